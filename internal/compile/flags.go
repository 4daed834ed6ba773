package compile

import (
	"fmt"

	"github.com/sandia-minimega/tlgen/internal/config"
	"github.com/sandia-minimega/tlgen/internal/schema"
)

// InheritanceChecker implements component C7: the scheme's flagInheritance
// table names, for some constructors, a "parent" whose conditional flag
// bits they are expected to agree with. Ported from generate_tl.py's
// parentFlagsCheck loop, including its documented behavior (spec.md §9
// Open Question 1): an unfamiliar flag name under a known parent silently
// joins the parent's tracked set rather than being rejected; only a name
// that repeats with a *different* bit is an error.
type InheritanceChecker struct {
	parentBits map[string]map[string]int
}

// NewInheritanceChecker returns an empty checker.
func NewInheritanceChecker() *InheritanceChecker {
	return &InheritanceChecker{parentBits: map[string]map[string]int{}}
}

// Check folds c's conditional flag fields into its declared parent's
// tracked set (scheme.FlagInheritance[c.Name]), erroring only when a flag
// name it has seen before under that parent now claims a different bit.
func (ic *InheritanceChecker) Check(c *schema.Constructor, scheme *config.Scheme) error {
	if scheme == nil {
		return nil
	}
	parent, ok := scheme.FlagInheritance[c.Name]
	if !ok {
		return nil
	}

	bits := ic.parentBits[parent]
	if bits == nil {
		bits = map[string]int{}
		ic.parentBits[parent] = bits
	}

	for _, f := range c.Params {
		if f.Shape.Kind != schema.ShapeConditional {
			continue
		}
		bit := f.Shape.Bit
		if f.Shape.Is64 {
			bit += 32
		}
		if existing, seen := bits[f.Name]; seen {
			if existing != bit {
				return fmt.Errorf("flag inheritance: %q declares %q at bit %d, but parent %q already has it at bit %d", c.Name, f.Name, bit, parent, existing)
			}
			continue
		}
		bits[f.Name] = bit
	}
	return nil
}
