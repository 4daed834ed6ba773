package schema

// ShapeKind discriminates the five field shapes named in spec.md §3.
type ShapeKind int

const (
	ShapePlain ShapeKind = iota
	ShapeVector
	ShapeFlagWord
	ShapeConditional
	ShapeTemplateVar
)

// Shape describes what kind of value a Field holds on the wire.
type Shape struct {
	Kind ShapeKind

	// Type is the referenced type name for ShapePlain, the element type
	// name for ShapeVector, or the payload type for ShapeConditional.
	Type string

	// VectorBoxed is true when a ShapeVector's elements are themselves
	// boxed (a "Vector<Foo>" vs "vector<foo>" distinction).
	VectorBoxed bool

	// FlagName names the flag word a ShapeConditional field is gated by
	// ("flags" or "flags2").
	FlagName string

	// Bit is the zero-based bit position within the flag word for a
	// ShapeConditional field. A field gated by the second flag word keeps
	// its position within that word (0-31) and has Is64 set; the +32
	// offset is added where a combined 64-bit position is needed.
	Bit int

	// Trivial marks a ShapeConditional field whose type is "true": it
	// materializes only as an is_<name>() predicate, never as data.
	Trivial bool

	// Is64 marks a ShapeFlagWord as the second (bits 32-63) flag word, and
	// a ShapeConditional field as gated by that second word.
	Is64 bool
}

// Field is one parameter of a Constructor or Method.
type Field struct {
	Name  string
	Shape Shape

	Nullable       bool // comment-derived: "<name> may be null" / "pass null"
	NullableVector bool // comment-derived: "<name>s may be null", vector-only
	BotsOnly       bool // comment-derived: "for bots only"

	Doc string
}

// IsData reports whether the field materializes as a stored value (as
// opposed to a trivial-true predicate or a bots-only placeholder).
func (f Field) IsData() bool {
	if f.Shape.Kind == ShapeConditional && f.Shape.Trivial {
		return false
	}
	if f.BotsOnly {
		return false
	}
	return true
}
