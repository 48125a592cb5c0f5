// Package explainer is the reciter-error explainer (spec §4.7, C7): given
// a reference and a predicted phoneme stream for the same aya, it aligns
// their normalized forms and classifies each divergence as a tajweed
// error, a normal speech error, or a tashkeel (diacritic-only) error,
// using the tajweed rule tags already carried on the reference mapping.
//
// The alignment itself (leaders() over each group's first codepoint) can
// call two groups Equal while their full phoneme text still differs in
// length — a reciter holding a madd for the wrong beat count is the
// textbook case. Explain re-checks every Equal-aligned pair's full text
// and, when it diverges, walks the span's tajweed rule (via Rule.Count
// against Kind.GoldenLen, for Count-type rules) to still report it,
// grounded on explain_error's "equal" branch in the teacher's Python
// predecessor (_examples/original_source/.../error_explainer.py).
//
// This component is an interface-only collaborator: its only coupling to
// the mapping-preserving core is the mapping it consumes, read-only.
package explainer

import (
	"fmt"

	"github.com/obadx/quran-transcript/internal/diffutil"
	"github.com/obadx/quran-transcript/internal/phonemegroup"
	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/tajweed"
)

// Class categorizes one divergence between reference and prediction.
type Class string

const (
	ClassTajweed  Class = "tajweed"
	ClassNormal   Class = "normal"
	ClassTashkeel Class = "tashkeel"
)

// ReciterError is one classified divergence between the reference and
// predicted phoneme streams, anchored back to the Uthmani text via the
// reference mapping.
type ReciterError struct {
	Class        Class
	Kind         diffutil.OpKind
	RefGroup     string
	PredGroup    string
	UthCharStart int
	UthCharEnd   int
	ExpectedLen  uint32 // count-type rules only: Kind.GoldenLen()
	PredictedLen uint32 // count-type rules only: Rule.Count(ref, pred)
	Rules        []tajweed.Rule
}

// alignment is one disassembled ref/pred group pairing: unlike
// diffutil.Op, every entry covers exactly one ref index and one pred
// index, matching the teacher's align_phonemes_groups so Equal and
// Replace spans can be walked group-by-group.
type alignment struct {
	kind    diffutil.OpKind
	refIdx  int
	predIdx int
}

// Explain aligns ref and pred phoneme streams and reports the divergences
// between them, classified using refMapping's per-span tajweed tags (spec
// §4.7).
func Explain(uthmani, refPhonemes, predPhonemes string, refMapping mapping.List) ([]ReciterError, error) {
	refGroups := phonemegroup.Chunk(refPhonemes)
	predGroups := phonemegroup.Chunk(predPhonemes)

	refToUth, err := invertMapping(refMapping)
	if err != nil {
		return nil, fmt.Errorf("explainer: %w", err)
	}
	refGroupRules := groupRules(refGroups, refMapping, refToUth)

	ops := diffutil.Diff(leaders(refGroups), leaders(predGroups))
	alignments := disassemble(ops)

	var errs []ReciterError
	for _, a := range alignments {
		switch a.kind {
		case diffutil.Insert:
			errs = append(errs, insertError(refGroups, predGroups, refToUth, a))
		case diffutil.Delete:
			errs = append(errs, deleteError(refGroups, refMapping, refToUth, a))
		case diffutil.Replace:
			errs = append(errs, replaceErrors(refGroups, predGroups, refGroupRules, refToUth, a)...)
		case diffutil.Equal:
			if e, ok := equalError(refGroups, predGroups, refGroupRules, refToUth, a); ok {
				errs = append(errs, e...)
			}
		}
	}

	return errs, nil
}

// disassemble expands diffutil's range-based ops into one alignment per
// ref/pred index pair, zipping Equal/Replace ranges positionally (the
// shorter side bounds the pairing, same as the teacher's zip(range(...),
// range(...)) for ranges of unequal length) and fanning Insert/Delete out
// against their single anchor index, per align_phonemes_groups.
func disassemble(ops []diffutil.Op) []alignment {
	var out []alignment
	for _, op := range ops {
		switch op.Kind {
		case diffutil.Equal, diffutil.Replace:
			n := min(op.SrcHi-op.SrcLo, op.DstHi-op.DstLo)
			for i := 0; i < n; i++ {
				out = append(out, alignment{kind: op.Kind, refIdx: op.SrcLo + i, predIdx: op.DstLo + i})
			}
		case diffutil.Insert:
			for j := op.DstLo; j < op.DstHi; j++ {
				out = append(out, alignment{kind: diffutil.Insert, refIdx: op.SrcLo, predIdx: j})
			}
		case diffutil.Delete:
			for i := op.SrcLo; i < op.SrcHi; i++ {
				out = append(out, alignment{kind: diffutil.Delete, refIdx: i, predIdx: op.DstLo})
			}
		}
	}
	return out
}

func insertError(refGroups, predGroups []phonemegroup.Group, refToUth map[int]int, a alignment) ReciterError {
	pos := refToUth[groupPhStart(refGroups, a.refIdx)]
	return ReciterError{
		Class:        ClassNormal,
		Kind:         diffutil.Insert,
		PredGroup:    groupText(predGroups, a.predIdx),
		UthCharStart: pos,
		UthCharEnd:   pos,
	}
}

func deleteError(refGroups []phonemegroup.Group, refMapping mapping.List, refToUth map[int]int, a alignment) ReciterError {
	g := refGroups[a.refIdx]
	uthIdx := refToUth[g.Start]
	class := ClassNormal
	if uthIdx < len(refMapping) && len(refMapping[uthIdx].Rules) > 0 {
		class = ClassTajweed
	}
	return ReciterError{
		Class:        class,
		Kind:         diffutil.Delete,
		RefGroup:     g.Text,
		UthCharStart: uthIdx,
		UthCharEnd:   refToUth[g.End-1] + 1,
	}
}

// replaceErrors mirrors explain_error's "replace" branch: with a tajweed
// rule attached, every rule on the span reports its own relevant variant
// against pred (count-type rules carry the expected/predicted elongation
// length); with none attached it is a plain normal-speech substitution.
func replaceErrors(refGroups, predGroups []phonemegroup.Group, refGroupRules [][]tajweed.Rule, refToUth map[int]int, a alignment) []ReciterError {
	g := refGroups[a.refIdx]
	predText := groupText(predGroups, a.predIdx)
	uthStart, uthEnd := refToUth[g.Start], refToUth[g.End-1]+1

	rules := refGroupRules[a.refIdx]
	if len(rules) == 0 {
		return []ReciterError{{
			Class: ClassNormal, Kind: diffutil.Replace,
			RefGroup: g.Text, PredGroup: predText,
			UthCharStart: uthStart, UthCharEnd: uthEnd,
		}}
	}

	var out []ReciterError
	for _, r := range rules {
		e := ReciterError{
			Class: ClassTajweed, Kind: diffutil.Replace,
			RefGroup: g.Text, PredGroup: predText,
			UthCharStart: uthStart, UthCharEnd: uthEnd,
			Rules: []tajweed.Rule{r},
		}
		if relevant, ok := r.GetRelevantRule(tail(predText)); ok && relevant.Kind.CorrectnessType() == tajweed.Count {
			e.ExpectedLen = uint32(relevant.Kind.GoldenLen())
			e.PredictedLen = relevant.Count(tail(g.Text), tail(predText))
		}
		out = append(out, e)
	}
	return out
}

// equalError mirrors explain_error's "equal" branch: leader codepoints
// matched but the groups' full text did not. When the span carries no
// tajweed rule, or the rule is Match-type, the teacher's source leaves
// this uncaptured (a standing TODO there, preserved here rather than
// invented) — nothing is reported.
func equalError(refGroups, predGroups []phonemegroup.Group, refGroupRules [][]tajweed.Rule, refToUth map[int]int, a alignment) ([]ReciterError, bool) {
	g := refGroups[a.refIdx]
	predText := groupText(predGroups, a.predIdx)
	if g.Text == predText {
		return nil, false
	}

	rules := refGroupRules[a.refIdx]
	if len(rules) == 0 {
		return nil, false
	}

	uthStart, uthEnd := refToUth[g.Start], refToUth[g.End-1]+1
	var out []ReciterError
	for _, r := range rules {
		if r.Kind.CorrectnessType() != tajweed.Count {
			continue // Match-type under an Equal alignment: unresolved upstream, left unreported
		}
		out = append(out, ReciterError{
			Class: ClassTajweed, Kind: diffutil.Replace, // teacher's speech_error_type stays "replace" here too
			RefGroup: g.Text, PredGroup: predText,
			UthCharStart: uthStart, UthCharEnd: uthEnd,
			ExpectedLen:  uint32(r.Kind.GoldenLen()),
			PredictedLen: r.Count(tail(g.Text), tail(predText)),
			Rules:        []tajweed.Rule{r},
		})
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// tail strips a phoneme group's leading consonant, leaving the
// vowel/elongation-fill run the tajweed rules actually compare against.
// Our Chunk groups consonant+tail together (the chunck_phonemes this was
// ported from was filtered out of the retrieval pack, see DESIGN.md), so
// Rule.Count and GetRelevantRule — which key off a string's own leading
// codepoint — need the tail, not the whole group, to land on the fill
// rune rather than the consonant.
func tail(s string) string {
	r := []rune(s)
	if len(r) <= 1 {
		return ""
	}
	return string(r[1:])
}

func groupPhStart(groups []phonemegroup.Group, idx int) int {
	if idx < len(groups) {
		return groups[idx].Start
	}
	if len(groups) > 0 {
		return groups[len(groups)-1].End
	}
	return 0
}

func groupText(groups []phonemegroup.Group, idx int) string {
	if idx < 0 || idx >= len(groups) {
		return ""
	}
	return groups[idx].Text
}

func leaders(groups []phonemegroup.Group) []rune {
	out := make([]rune, len(groups))
	for i, g := range groups {
		out[i] = []rune(g.Text)[0]
	}
	return out
}

// groupRules computes, for every ref phoneme group, the deduplicated set
// of tajweed rules carried by the Uthmani codepoints it covers — one rule
// list per ref-phoneme-codepoint distinct source character, per
// get_ref_phonetic_groups_tajweed_rules.
func groupRules(refGroups []phonemegroup.Group, refMapping mapping.List, refToUth map[int]int) [][]tajweed.Rule {
	out := make([][]tajweed.Rule, len(refGroups))
	for gi, g := range refGroups {
		seen := make(map[int]bool)
		for ph := g.Start; ph < g.End; ph++ {
			uthIdx, ok := refToUth[ph]
			if !ok || seen[uthIdx] {
				continue
			}
			seen[uthIdx] = true
			if uthIdx < len(refMapping) {
				out[gi] = append(out[gi], refMapping[uthIdx].Rules...)
			}
		}
	}
	return out
}

// invertMapping builds a reference-phoneme-codepoint-index to
// Uthmani-codepoint-index table by inverting refMapping (spec §4.7).
func invertMapping(m mapping.List) (map[int]int, error) {
	out := make(map[int]int, len(m))
	for uthIdx, span := range m {
		if span.Deleted {
			continue
		}
		for ph := span.Start; ph < span.End; ph++ {
			out[ph] = uthIdx
		}
	}
	if len(m) > 0 {
		last := m[len(m)-1]
		out[last.End] = len(m)
	}
	return out, nil
}
