package compile

import (
	"testing"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/parse"
)

func TestCanonicalSignatureDropsTrivialTrue(t *testing.T) {
	d, err := parse.Parse("bar flags:# name:flags.0?string present:flags.1?true = Bar;", false)
	if err != nil {
		t.Fatal(err)
	}
	sig := CanonicalSignature(d, nil)
	if got := sig; containsSubstr(got, "present") {
		t.Errorf("trivial-true field leaked into signature: %q", got)
	}
	if !containsSubstr(sig, "flags:#") || !containsSubstr(sig, "name:flags.0?string") {
		t.Errorf("signature missing expected fields: %q", sig)
	}
}

func TestCanonicalSignatureFoldsVectorBrackets(t *testing.T) {
	d, err := parse.Parse("b x:Vector<int> = U;", false)
	if err != nil {
		t.Fatal(err)
	}
	sig := CanonicalSignature(d, nil)
	if containsSubstr(sig, "<") || containsSubstr(sig, ">") {
		t.Errorf("expected angle brackets folded out, got %q", sig)
	}
}

func TestCanonicalSignatureAppliesSynonyms(t *testing.T) {
	scheme := &config.Scheme{Synonyms: map[string]string{"bytes": "string"}}
	d, err := parse.Parse("b x:bytes = U;", false)
	if err != nil {
		t.Fatal(err)
	}
	sig := CanonicalSignature(d, scheme)
	if !containsSubstr(sig, "x:string") {
		t.Errorf("expected synonym substitution, got %q", sig)
	}
}

func TestResolveTypeIDComputesWhenAbsent(t *testing.T) {
	d, err := parse.Parse("boolTrue = Bool;", false)
	if err != nil {
		t.Fatal(err)
	}
	out := ResolveTypeID(d, nil)
	if out.Mismatched {
		t.Error("no explicit id can never mismatch")
	}
	want := ComputeTypeID(CanonicalSignature(d, nil))
	if out.TypeID != want {
		t.Errorf("TypeID = %x, want %x", out.TypeID, want)
	}
}

func TestResolveTypeIDMatchesRealSchemaIDs(t *testing.T) {
	cases := []struct {
		line string
		want uint32
	}{
		{"boolTrue = Bool;", 0x997275b5},
		{"true = True;", 0xff0a815f},
	}
	for _, c := range cases {
		d, err := parse.Parse(c.line, false)
		if err != nil {
			t.Fatal(err)
		}
		out := ResolveTypeID(d, nil)
		if out.TypeID != c.want {
			t.Errorf("%q: TypeID = %x, want %x", c.line, out.TypeID, c.want)
		}
	}
}

func TestResolveTypeIDFlagsMismatch(t *testing.T) {
	d, err := parse.Parse("boolTrue#ffffffff = Bool;", false)
	if err != nil {
		t.Fatal(err)
	}
	out := ResolveTypeID(d, nil)
	if !out.Mismatched {
		t.Error("expected mismatch against a bogus explicit id")
	}
}

func TestResolveTypeIDExceptionOverridesMismatch(t *testing.T) {
	d, err := parse.Parse("boolTrue#ffffffff = Bool;", false)
	if err != nil {
		t.Fatal(err)
	}
	scheme := &config.Scheme{TypeIDExceptions: []string{"boolTrue#ffffffff"}}
	out := ResolveTypeID(d, scheme)
	if out.Mismatched {
		t.Error("exception list should have silenced the mismatch")
	}
	if out.TypeID != 0xffffffff {
		t.Errorf("TypeID = %x, want ffffffff", out.TypeID)
	}
}

func containsSubstr(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
