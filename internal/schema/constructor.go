package schema

// Constructor is a named concrete record producing a value of some
// abstract type (spec.md §3 "Constructor").
type Constructor struct {
	// OriginalName is the name exactly as it appeared in the schema,
	// before any renamedTypes substitution; used for CRC exception keys.
	OriginalName string

	Name   string // bare spelling after renamedTypes, e.g. "messages.sendMessage"
	TypeID uint32

	Params []Field

	// HasFlags/HasFlags64 name the constructor's first and (optional)
	// second flag-word fields, "" if absent.
	HasFlags   string
	HasFlags64 string
	MaxField   uint64 // 1 << highest declared bit, per spec.md invariant 3

	// ResultType is the abstract type this constructor belongs to.
	ResultType string

	// IsMethod marks a declaration parsed from the ---functions--- section.
	IsMethod bool

	// Template is the type variable X introduced by `{X:Type}` in a generic
	// RPC method, "" if not generic.
	Template string
	// TemplateResponseType is the declared result type name when Template != "".
	TemplateResponseType string

	Doc string
}

// DataFields returns the subset of Params that carry wire data: every
// param except trivial-true conditionals and bots-only fields (flag words
// are included).
func (c *Constructor) DataFields() []Field {
	var out []Field
	for _, p := range c.Params {
		if p.Shape.Kind == ShapeConditional && p.Shape.Trivial {
			continue
		}
		if p.BotsOnly {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TrivialFields returns the trivial-true conditional fields, which surface
// only as boolean predicates.
func (c *Constructor) TrivialFields() []Field {
	var out []Field
	for _, p := range c.Params {
		if p.Shape.Kind == ShapeConditional && p.Shape.Trivial {
			out = append(out, p)
		}
	}
	return out
}

// HasAnyFlags reports whether the constructor declared a flag word.
func (c *Constructor) HasAnyFlags() bool {
	return c.HasFlags != ""
}
