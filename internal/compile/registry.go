package compile

import (
	"fmt"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// Registry is the component C6 abstract-type/constructor table: every
// constructor bucketed under its result type, in schema declaration order
// (spec.md §4.5), plus a by-name index used when a later declaration
// references an earlier one (vector element types, conditional payloads).
type Registry struct {
	order []string
	types map[string]*schema.AbstractType
	ctors map[string]*schema.Constructor

	// OptimizeSingleData mirrors the scheme's optimizeSingleData flag:
	// when set, a type with exactly one data-bearing constructor and no
	// discriminator emits as that constructor's struct directly rather
	// than through an interface, everywhere it's referenced.
	OptimizeSingleData bool
}

// NewRegistry builds a Registry pre-seeded with the scheme's builtin scalar
// and template type names, so that references to them (e.g. "int", "string",
// "Vector") resolve without needing a declaration of their own.
func NewRegistry(scheme *config.Scheme) *Registry {
	r := &Registry{types: map[string]*schema.AbstractType{}, ctors: map[string]*schema.Constructor{}}
	if scheme == nil {
		return r
	}
	r.OptimizeSingleData = scheme.OptimizeSingleData
	for _, name := range scheme.Builtin {
		r.ensureType(name)
	}
	for _, name := range scheme.BuiltinTemplates {
		r.ensureType(name)
	}
	return r
}

func (r *Registry) ensureType(name string) *schema.AbstractType {
	if t, ok := r.types[name]; ok {
		return t
	}
	t := &schema.AbstractType{Name: name}
	r.types[name] = t
	r.order = append(r.order, name)
	return t
}

// Add buckets c under its (already renamed) result type, rejecting a
// constructor name collision with an earlier declaration — schema names
// must be unique across the whole input (spec.md invariant 1).
func (r *Registry) Add(c *schema.Constructor, scheme *config.Scheme) error {
	if _, dup := r.ctors[c.Name]; dup {
		return fmt.Errorf("duplicate constructor name %q", c.Name)
	}
	r.ctors[c.Name] = c

	t := r.ensureType(c.ResultType)
	if scheme != nil {
		t.Nullable = scheme.IsNullable(c.ResultType)
	}
	t.Constructors = append(t.Constructors, c)
	return nil
}

// Lookup returns the abstract type for name, if any constructor resolved
// to it (including scheme builtins pre-seeded in NewRegistry).
func (r *Registry) Lookup(name string) (*schema.AbstractType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Constructor returns the constructor registered under its (renamed) name.
func (r *Registry) Constructor(name string) (*schema.Constructor, bool) {
	c, ok := r.ctors[name]
	return c, ok
}

// AbstractTypes returns every abstract type in first-seen order, builtins
// included (spec.md §4.5: "insertion order preserved").
func (r *Registry) AbstractTypes() []*schema.AbstractType {
	out := make([]*schema.AbstractType, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name])
	}
	return out
}

// ResolveElementType follows a vector/conditional element's declared type
// name to its abstract type, rewriting a bare constructor spelling to its
// owning ("meta") abstract type first — a "Vector<photoEmpty>" element
// resolves through the Photo abstract type, not a nonexistent standalone
// photoEmpty type.
func (r *Registry) ResolveElementType(name string) (*schema.AbstractType, bool) {
	if t, ok := r.types[name]; ok {
		return t, true
	}
	if c, ok := r.ctors[name]; ok {
		return r.Lookup(c.ResultType)
	}
	return nil, false
}
