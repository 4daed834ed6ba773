package compile

import (
	"testing"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

func buildConstructorOrFail(t *testing.T, line string, isMethod bool, scheme *config.Scheme) *schema.Constructor {
	t.Helper()
	d := parseOne(t, line, isMethod)
	c, err := BuildConstructor(d, "", scheme)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRegistryBucketsByResultType(t *testing.T) {
	r := NewRegistry(nil)
	c1 := buildConstructorOrFail(t, "boolTrue = Bool;", false, nil)
	c2 := buildConstructorOrFail(t, "boolFalse = Bool;", false, nil)
	if err := r.Add(c1, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(c2, nil); err != nil {
		t.Fatal(err)
	}
	abstractType, ok := r.Lookup("Bool")
	if !ok {
		t.Fatal("expected Bool abstract type to be registered")
	}
	if len(abstractType.Constructors) != 2 {
		t.Errorf("constructors = %+v", abstractType.Constructors)
	}
	if !abstractType.WithType() {
		t.Error("two constructors should require a discriminating tag")
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	r := NewRegistry(nil)
	c1 := buildConstructorOrFail(t, "boolTrue = Bool;", false, nil)
	c2 := buildConstructorOrFail(t, "boolTrue = Bool;", false, nil)
	if err := r.Add(c1, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(c2, nil); err == nil {
		t.Error("expected duplicate constructor name to be rejected")
	}
}

func TestRegistryResolveElementTypeThroughConstructor(t *testing.T) {
	r := NewRegistry(nil)
	c := buildConstructorOrFail(t, "photoEmpty = Photo;", false, nil)
	if err := r.Add(c, nil); err != nil {
		t.Fatal(err)
	}
	abstractType, ok := r.ResolveElementType("photoEmpty")
	if !ok || abstractType.Name != "Photo" {
		t.Errorf("ResolveElementType(photoEmpty) = %+v, %v", abstractType, ok)
	}
}

func TestRegistryPreseedsBuiltins(t *testing.T) {
	scheme := &config.Scheme{Builtin: []string{"int", "string"}}
	r := NewRegistry(scheme)
	if _, ok := r.Lookup("int"); !ok {
		t.Error("expected builtin int to be pre-seeded")
	}
	types := r.AbstractTypes()
	if len(types) != 2 {
		t.Errorf("AbstractTypes() = %+v", types)
	}
}
