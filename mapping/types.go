// Package mapping implements the mapping-preserving rewrite engine: the
// primitive that applies one regex substitution to a string and
// synthesises a per-source-character mapping to the result (spec §4.1,
// C1), the mapping merger that composes successive steps (§4.2, C2), and
// the invariants both must uphold (§8).
//
// This is, per spec §1, "the hardest part of the repo": it reconstructs a
// semantic correspondence from only the raw edit script produced by a
// Levenshtein opcode generator (package internal/diffutil), handling
// several orthography-specific edge cases. Everything here operates over
// codepoints, never bytes (§9).
package mapping

import "github.com/obadx/quran-transcript/tajweed"

// Span is the atomic unit of a mapping: where one source character ended
// up after a series of rewrites (spec §3.1, "MappingSpan").
type Span struct {
	Start, End int
	Deleted    bool
	Rules      []tajweed.Rule
}

// NonDeleted builds a surviving span covering output codepoints [start,end).
func NonDeleted(start, end int, rules ...tajweed.Rule) Span {
	return Span{Start: start, End: end, Rules: cloneRules(rules)}
}

// DeletedAt builds a deleted span pinned to the gap at pos.
func DeletedAt(pos int, rules ...tajweed.Rule) Span {
	return Span{Start: pos, End: pos, Deleted: true, Rules: cloneRules(rules)}
}

func cloneRules(rules []tajweed.Rule) []tajweed.Rule {
	if len(rules) == 0 {
		return nil
	}
	out := make([]tajweed.Rule, len(rules))
	copy(out, rules)
	return out
}

// withRule returns a copy of s with rule appended, when rule is non-nil.
func (s Span) withRule(rule *tajweed.Rule) Span {
	if rule == nil {
		return s
	}
	s.Rules = append(cloneRules(s.Rules), *rule)
	return s
}

// List is a mapping from every codepoint of some original text to its
// location (possibly deleted) in a later text. len(List) never changes
// after creation by the first rewrite step (spec §3.1, "MappingList").
type List []Span

// Clone returns a deep copy of l.
func (l List) Clone() List {
	out := make(List, len(l))
	for i, s := range l {
		out[i] = Span{Start: s.Start, End: s.End, Deleted: s.Deleted, Rules: cloneRules(s.Rules)}
	}
	return out
}

// CodepointLen returns the number of output codepoints this mapping
// covers: the End of its last non-deleted span, or 0 if every span is
// deleted (spec §8 invariant 2, "Coverage").
func (l List) CodepointLen() int {
	for i := len(l) - 1; i >= 0; i-- {
		if !l[i].Deleted {
			return l[i].End
		}
	}
	return 0
}
