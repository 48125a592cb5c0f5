package mapping

import (
	"github.com/obadx/quran-transcript/alphabet"
	"github.com/obadx/quran-transcript/tajweed"
)

// attachQalqalah implements spec §4.1 step 5: the qalqalah marker
// codepoint immediately following a qalqalah-eligible letter has its
// contribution folded back onto the letter's own span, so the letter's
// span (not a synthetic trailing one) carries the Qalqalah rule.
func attachQalqalah(m List, dstRunes []rune) List {
	for q := 1; q < len(dstRunes); q++ {
		if dstRunes[q] != alphabet.Phonetics.Qlqla {
			continue
		}
		if !alphabet.IsQalqalahLetter(dstRunes[q-1]) {
			continue
		}
		k := findSpanByStart(m, q)
		if k < 0 || k == 0 {
			continue
		}
		if len(m[k-1].Rules) > 0 {
			continue // guard: already annotated, do nothing
		}
		m[k-1].End = m[k].End
		m[k-1].Rules = append(m[k-1].Rules, m[k].Rules...)
		m[k] = DeletedAt(m[k].End)
	}
	return m
}

// findSpanByStart returns the index of the (non-deleted) span whose Start
// equals q, or -1 if none.
func findSpanByStart(m List, q int) int {
	for i, s := range m {
		if !s.Deleted && s.Start == q {
			return i
		}
	}
	return -1
}

// attachTanweenBeforeIdgham implements spec §4.1 step 6: a tanween
// codepoint that was consumed by idgham (its source character no longer
// appears at its own mapped output position) merges its extent onto the
// preceding span.
func attachTanweenBeforeIdgham(m List, srcRunes, dstRunes []rune) List {
	for i, r := range srcRunes {
		if r != alphabet.Uthmani.TanweenIdhaamDterminer {
			continue
		}
		if m[i].Deleted {
			continue
		}
		if m[i].Start >= len(dstRunes) || dstRunes[m[i].Start] == srcRunes[i] {
			continue
		}
		if i > 0 {
			m[i-1].End = m[i].End
		}
		m[i] = DeletedAt(m[i].End)
	}
	return m
}

// applyShaddaAssimilation implements spec §4.1 step 7: when two identical
// letters assimilate under shadda ("C SPACE? C SHADDA"), the second
// instance carries the surviving phoneme.
func applyShaddaAssimilation(m List, srcRunes []rune) List {
	n := len(srcRunes)
	for first := 0; first < n; first++ {
		c := srcRunes[first]
		if c == alphabet.Uthmani.Space {
			continue
		}
		second := first + 1
		if second < n && srcRunes[second] == alphabet.Uthmani.Space {
			second++
		}
		if second >= n || second+1 >= n {
			continue
		}
		if srcRunes[second] != c || srcRunes[second+1] != alphabet.Uthmani.Shadda {
			continue
		}

		if !m[first].Deleted && m[second].Deleted {
			survivor := m[first]
			m[second] = survivor
			for idx := first; idx < second; idx++ {
				m[idx] = DeletedAt(survivor.Start)
			}
		}
	}
	return m
}

// tagLeenMadd implements spec §4.1 step 8: a Leen Madd rule attached
// without a tag is tagged from the madd-fill codepoint at its span's
// start.
func tagLeenMadd(m List, dstRunes []rune) List {
	for i := range m {
		if m[i].Deleted || m[i].Start >= len(dstRunes) {
			continue
		}
		for ri := range m[i].Rules {
			r := &m[i].Rules[ri]
			if r.Kind == tajweed.LeenMadd && r.Tag == "" {
				if tag, ok := alphabet.MaddToTag[dstRunes[m[i].Start]]; ok {
					r.Tag = tag
				}
			}
		}
	}
	return m
}
