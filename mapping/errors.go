package mapping

import "fmt"

// InvariantError reports a broken mapping invariant (spec §7,
// "InvariantViolated" — "a programming error", always returned structured,
// never silently swallowed; see SPEC_FULL.md Open Question 1).
type InvariantError struct {
	Reason string
	Index  int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mapping: invariant violated at index %d: %s", e.Index, e.Reason)
}

// EmptyStepMappingError is returned by Merge when step is empty but acc is
// not (spec §4.2, §7 "EmptyStepMapping").
type EmptyStepMappingError struct{}

func (e *EmptyStepMappingError) Error() string {
	return "mapping: merge received an empty step mapping with a non-empty accumulator"
}

// checkContiguity validates spec §8 invariants 1 and 2 over m, the mapping
// produced by one rewrite step, against outputLen codepoints of output
// text. Returns the first violation found, or nil.
func checkContiguity(m List, outputLen int) error {
	lastEnd := -1
	haveAny := false
	for i, s := range m {
		if s.Deleted {
			if s.Start != s.End {
				return &InvariantError{Index: i, Reason: "deleted span has start != end"}
			}
			continue
		}
		if s.End <= s.Start {
			return &InvariantError{Index: i, Reason: "non-deleted span has end <= start"}
		}
		if haveAny && s.Start != lastEnd {
			return &InvariantError{Index: i, Reason: fmt.Sprintf("gap or overlap: previous span ended at %d, this one starts at %d", lastEnd, s.Start)}
		}
		lastEnd = s.End
		haveAny = true
	}
	if haveAny && lastEnd != outputLen {
		return &InvariantError{Index: len(m) - 1, Reason: fmt.Sprintf("last non-deleted span ends at %d, output has %d codepoints", lastEnd, outputLen)}
	}
	return nil
}
