// Package operation implements the named rewrite step (spec §4.3, C3): an
// ordered list of (pattern, replacement) pairs, each optionally tagged
// with a tajweed rule, applied in sequence through package mapping's C1
// primitive.
package operation

import (
	"fmt"
	"regexp"

	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/tajweed"
)

// Reg is one (pattern, replacement) pair with its optional tajweed tag.
type Reg struct {
	Pattern     *regexp.Regexp
	Replacement string
	Rule        *tajweed.Rule // nil when this substitution carries no tag
}

// Builder constructs an Operation's Regs for a given MoshafConfig.
// Operations whose patterns are parameterised by config-selected codepoints
// (spec §4.3, "Constraints on regs") implement this to pick the right
// variant at construction time; the compiled patterns are static at
// runtime from then on.
type Builder func(cfg moshaf.Config) []Reg

// Operation is one named step of the phonetizer pipeline.
type Operation struct {
	ArabicName string
	Build      Builder
	OpsBefore  []*Operation // declarative dependency list, test mode only
}

// Mode selects whether Apply resolves test-mode dependencies.
type Mode int

const (
	Production Mode = iota
	Test
)

// Apply runs op's (pattern, replacement) pairs in order against text,
// threading the mapping through package mapping's C1 primitive (spec
// §4.3). In Test mode, every op in OpsBefore whose ArabicName is not in
// discard is applied first, recursively.
func (op *Operation) Apply(text string, cfg moshaf.Config, mappingIn mapping.List, mode Mode, discard map[string]bool) (string, mapping.List, error) {
	if mode == Test {
		for _, dep := range op.OpsBefore {
			if discard[dep.ArabicName] {
				continue
			}
			var err error
			text, mappingIn, err = dep.Apply(text, cfg, mappingIn, mode, discard)
			if err != nil {
				return "", nil, fmt.Errorf("operation %q (dependency %q): %w", op.ArabicName, dep.ArabicName, err)
			}
		}
	}

	regs := op.Build(cfg)
	for _, reg := range regs {
		var err error
		text, mappingIn, err = mapping.ApplyRegex(reg.Pattern, reg.Replacement, text, mappingIn, reg.Rule)
		if err != nil {
			return "", nil, fmt.Errorf("operation %q: %w", op.ArabicName, err)
		}
	}
	return text, mappingIn, nil
}
