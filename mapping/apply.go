package mapping

import (
	"regexp"

	"github.com/obadx/quran-transcript/internal/diffutil"
	"github.com/obadx/quran-transcript/internal/runeidx"
	"github.com/obadx/quran-transcript/tajweed"
)

// ApplyRegex applies one regex substitution to text and returns the
// resulting text together with a mapping from text's codepoints to the
// result, merged onto mappingIn (spec §4.1, C1). mappingIn may be nil, in
// which case the returned mapping starts fresh (spec §4.2, "acc is
// None"). rule, if non-nil, is attached to every span the substitution
// introduces or touches, per the per-case rules below.
func ApplyRegex(pattern *regexp.Regexp, replacement string, text string, mappingIn List, rule *tajweed.Rule) (string, List, error) {
	srcTable := runeidx.Build(text)
	srcRunes := srcTable.Runes
	newText := pattern.ReplaceAllString(text, replacement)
	dstTable := runeidx.Build(newText)
	dstRunes := dstTable.Runes

	step, err := buildStepMapping(srcRunes, dstRunes, rule)
	if err != nil {
		return "", nil, err
	}

	step = attachQalqalah(step, dstRunes)
	step = attachTanweenBeforeIdgham(step, srcRunes, dstRunes)
	step = applyShaddaAssimilation(step, srcRunes)
	step = tagLeenMadd(step, dstRunes)

	if err := checkContiguity(step, len(dstRunes)); err != nil {
		return "", nil, err
	}

	merged, err := Merge(mappingIn, step)
	if err != nil {
		return "", nil, err
	}
	return newText, merged, nil
}

// buildStepMapping implements spec §4.1 steps 2-4: diff src against dst,
// then walk the opcodes with one-step lookbehind/lookahead dispatching on
// each opcode's kind.
func buildStepMapping(srcRunes, dstRunes []rune, rule *tajweed.Rule) (List, error) {
	ops := diffutil.Diff(srcRunes, dstRunes)

	m := make(List, len(srcRunes))
	assigned := make([]bool, len(srcRunes))
	deferredDelete := make([]bool, len(srcRunes))

	for i := range ops {
		curr := &ops[i]
		var prev, next *diffutil.Op
		if i > 0 {
			prev = &ops[i-1]
		}
		if i < len(ops)-1 {
			next = &ops[i+1]
		}

		switch curr.Kind {
		case diffutil.Equal:
			applyEqual(m, assigned, curr)
		case diffutil.Replace:
			applyReplace(m, assigned, deferredDelete, srcRunes, curr, rule)
		case diffutil.Delete:
			applyDelete(m, curr, rule)
		case diffutil.Insert:
			applyInsert(m, assigned, deferredDelete, dstRunes, prev, curr, next, rule)
		}
	}
	return m, nil
}

func applyEqual(m List, assigned []bool, curr *diffutil.Op) {
	n := curr.SrcHi - curr.SrcLo
	for idx := 0; idx < n; idx++ {
		isrc := curr.SrcLo + idx
		if assigned[isrc] {
			continue
		}
		jdst := curr.DstLo + idx
		m[isrc] = NonDeleted(jdst, jdst+1)
		assigned[isrc] = true
	}
}

// applyReplace pairs each source index in the op with a destination
// codepoint positionally. When the source and destination ranges differ in
// length (uncommon — most phonetizer substitutions are 1:1), any leftover
// destination codepoints are folded into the last paired span and any
// leftover source codepoints collapse onto the destination's end, so
// coverage and contiguity (§8 invariants 1-2) hold regardless.
func applyReplace(m List, assigned, deferredDelete []bool, srcRunes []rune, curr *diffutil.Op, rule *tajweed.Rule) {
	lenSrc := curr.SrcHi - curr.SrcLo
	lenDst := curr.DstHi - curr.DstLo
	n := min(lenSrc, lenDst)

	for idx := 0; idx < n; idx++ {
		isrc := curr.SrcLo + idx
		if assigned[isrc] || deferredDelete[isrc] {
			continue
		}
		jdst := curr.DstLo + idx
		end := jdst + 1
		if idx == n-1 {
			end = curr.DstHi // absorb any leftover destination codepoints
		}

		if srcRunes[isrc] == ' ' {
			// "absorb space into preceding word"
			m[isrc] = DeletedAt(jdst + 1)
			if isrc > 0 {
				m[isrc-1].End = jdst + 1
			}
		} else {
			m[isrc] = NonDeleted(jdst, end).withRule(rule)
		}
		assigned[isrc] = true
	}

	// Leftover source codepoints beyond the destination's length collapse
	// onto the gap at the destination's end.
	for idx := n; idx < lenSrc; idx++ {
		isrc := curr.SrcLo + idx
		if assigned[isrc] || deferredDelete[isrc] {
			continue
		}
		m[isrc] = DeletedAt(curr.DstHi)
		assigned[isrc] = true
	}
}

func applyDelete(m List, curr *diffutil.Op, rule *tajweed.Rule) {
	for isrc := curr.SrcLo; isrc < curr.SrcHi; isrc++ {
		m[isrc] = DeletedAt(curr.DstLo).withRule(rule)
	}
}

func applyInsert(m List, assigned, deferredDelete []bool, dstRunes []rune, prev, curr, next *diffutil.Op, rule *tajweed.Rule) {
	prevIsEqual := prev != nil && prev.Kind == diffutil.Equal
	var prevLastSrc int
	var eqInsSame, eqInsNotSame bool
	if prevIsEqual {
		prevLastSrc = prev.SrcHi - 1
		s := dstRunes[prev.DstHi-1]
		in := dstRunes[curr.DstLo]
		eqInsSame = s == in
		eqInsNotSame = s != in
	}

	if eqInsSame {
		m[prevLastSrc].End = curr.DstHi
		m[prevLastSrc] = m[prevLastSrc].withRule(rule)

		if next != nil && next.Kind == diffutil.Replace &&
			dstRunes[curr.DstHi-1] == dstRunes[next.DstLo] {
			m[prevLastSrc].End = next.DstHi
			for isrc := next.SrcLo; isrc < next.SrcHi; isrc++ {
				m[isrc] = DeletedAt(next.DstHi)
				assigned[isrc] = true
				deferredDelete[isrc] = true
			}
		}
		return
	}

	switch {
	case next != nil && next.Kind == diffutil.Replace:
		m[next.SrcLo] = NonDeleted(curr.DstLo, next.DstHi).withRule(rule)
		assigned[next.SrcLo] = true
		for isrc := next.SrcLo + 1; isrc < next.SrcHi; isrc++ {
			m[isrc] = DeletedAt(next.DstHi)
			assigned[isrc] = true
			deferredDelete[isrc] = true
		}
	case next != nil && next.Kind == diffutil.Equal:
		if dstRunes[curr.DstHi-1] == dstRunes[next.DstLo] {
			m[next.SrcLo] = NonDeleted(curr.DstLo, next.DstLo+1).withRule(rule)
			assigned[next.SrcLo] = true
		} else if eqInsNotSame {
			m[prevLastSrc].End = curr.DstHi
		} else {
			m[next.SrcLo] = NonDeleted(curr.DstLo, next.DstLo+1).withRule(rule)
			assigned[next.SrcLo] = true
		}
	case next == nil:
		if eqInsNotSame {
			m[prevLastSrc].End = curr.DstHi
		}
	}
}
