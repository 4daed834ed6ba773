package compile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSchema(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.tl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, `// LAYER 1
boolTrue#997275b5 = Bool;
boolFalse#bc799737 = Bool;

---functions---

sendMessage flags:# peer:InputPeer text:string silent:flags.0?true = Updates;
`)

	result, err := Compile([]string{path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Layer != 1 {
		t.Errorf("layer = %d, want 1", result.Layer)
	}

	boolType, ok := result.Registry.Lookup("Bool")
	if !ok || len(boolType.Constructors) != 2 {
		t.Fatalf("Bool type = %+v, ok=%v", boolType, ok)
	}

	send, ok := result.Registry.Constructor("sendMessage")
	if !ok {
		t.Fatal("expected sendMessage to be registered")
	}
	if !send.IsMethod {
		t.Error("sendMessage should be parsed from the functions section")
	}
	if len(send.TrivialFields()) != 1 {
		t.Errorf("trivial fields = %+v", send.TrivialFields())
	}
}

func TestCompileDropsCrcMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, `boolTrue#ffffffff = Bool;
`)
	result, err := Compile([]string{path}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
	if _, ok := result.Registry.Lookup("Bool"); ok {
		t.Error("dropped declaration should not have registered its type")
	}
}
