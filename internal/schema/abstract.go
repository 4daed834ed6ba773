package schema

// AbstractType is the bucket of constructors sharing a result type
// (spec.md §3 "Abstract type").
type AbstractType struct {
	Name string // boxed spelling, e.g. "messages.SentMessage"

	// Constructors is in schema declaration order (spec.md §4.5: "ordered
	// list of constructors, insertion order preserved").
	Constructors []*Constructor

	Nullable bool // from scheme config's nullable table
}

// WithType reports whether more than one constructor yields this abstract
// type, i.e. whether a wire tag is needed to discriminate.
func (a *AbstractType) WithType() bool {
	return len(a.Constructors) > 1
}

// WithData reports whether any constructor carries non-trivial fields.
func (a *AbstractType) WithData() bool {
	for _, c := range a.Constructors {
		if len(c.DataFields()) > 0 {
			return true
		}
	}
	return false
}

// SingleDataConstructor returns the lone data-bearing constructor when the
// optimizeSingleData scheme flag applies (exactly one constructor, not
// type-discriminated, carrying data), and ok=false otherwise.
func (a *AbstractType) SingleDataConstructor() (c *Constructor, ok bool) {
	if a.WithType() || !a.WithData() || len(a.Constructors) != 1 {
		return nil, false
	}
	return a.Constructors[0], true
}
