package compile

import (
	"fmt"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/parse"
	"github.com/sandia-minimega/tlgen/internal/schema"
	"github.com/sandia-minimega/tlgen/internal/source"
	"github.com/sandia-minimega/tlgen/internal/tllog"
)

// Result is the compiler's intermediate output: every abstract type
// discovered across the input, in declaration order, plus the registry
// used to resolve cross-references during emission.
type Result struct {
	Layer    int
	Names    []string // input basenames, in order, for the output banner
	Types    []*schema.AbstractType
	Registry *Registry

	// Dropped counts declarations whose explicit id disagreed with its
	// computed CRC and was not covered by a typeIdExceptions entry
	// (spec.md §9 Open Question 2: warn-and-drop, surfaced here rather
	// than silently swallowed).
	Dropped int
}

// Compile runs components C2 through C7 over inputFiles: reads and
// comment-scans the schema (C2), parses each declaration (C3), validates
// or computes its type id (C4), classifies its parameters (C5), buckets it
// into the type registry (C6), and checks flag inheritance (C7).
func Compile(inputFiles []string, scheme *config.Scheme) (*Result, error) {
	lines, layer, names, err := source.Read(inputFiles)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	registry := NewRegistry(scheme)
	checker := NewInheritanceChecker()
	dropped := 0
	isMethod := false

	for _, line := range lines {
		switch line.Text {
		case "---types---":
			isMethod = false
			continue
		case "---functions---":
			isMethod = true
			continue
		}
		if scheme != nil && scheme.IsSkipped(line.Text) {
			continue
		}

		d, err := parse.Parse(line.Text, isMethod)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line.Text, err)
		}

		if scheme != nil && source.IsBotsOnlyLine(line.Comments) {
			tllog.Debug("skipping %s: declaration is bots-only", d.OriginalName)
			continue
		}

		outcome := ResolveTypeID(d, scheme)
		if outcome.Mismatched {
			tllog.Warn("dropping %s: explicit id #%s disagrees with computed crc %08x", d.OriginalName, d.TypeIDHex, outcome.TypeID)
			dropped++
			continue
		}

		c, err := BuildConstructor(d, line.Comments, scheme)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", d.OriginalName, err)
		}
		c.TypeID = outcome.TypeID

		if err := checker.Check(c, scheme); err != nil {
			return nil, err
		}
		if err := registry.Add(c, scheme); err != nil {
			return nil, fmt.Errorf("registering %s: %w", d.OriginalName, err)
		}
	}

	return &Result{
		Layer:    layer,
		Names:    names,
		Types:    registry.AbstractTypes(),
		Registry: registry,
		Dropped:  dropped,
	}, nil
}
