// Package phonindex builds and persists the corpus-wide phoneme index
// (spec §4.5, C5): one row per phoneme group plus the concatenated
// first-codepoint normalized phoneme stream used by package search's
// bounded-edit lookup.
package phonindex

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/internal/phonemegroup"
	"github.com/obadx/quran-transcript/internal/runeidx"
	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/phonetizer"
)

// Row is one phoneme group's record (spec §3.1, PhonemeIndexRow). Sura and
// aya are 1-based; word and character indices are 0-based; UthCharStart/End
// index the cleaned single-space Uthmani text of that aya; PhStart/End
// index the corpus-wide concatenated phoneme stream.
type Row struct {
	Sura         uint16
	Aya          uint16
	WordInAya    uint16
	UthCharStart uint16
	UthCharEnd   uint16
	PhStart      uint16
	PhEnd        uint16
}

// Index is the full built table: one Row per phoneme group, plus the
// corpus-wide normalized reference stream (spec §3.1, PhonemeIndex).
type Index struct {
	Rows    []Row
	RefNorm string
}

// Build runs the phonetizer over every aya in c, in canonical order, and
// assembles the phoneme index (spec §4.5).
func Build(c *corpus.Corpus, cfg moshaf.Config) (*Index, error) {
	idx := &Index{}
	var refNorm strings.Builder
	var phCursor uint16

	for _, aya := range c.All() {
		uthmaniClean := collapseSpaces(aya.Uthmani)

		phonemes, _, m, err := phonetizer.Phonetize(uthmaniClean, cfg, true)
		if err != nil {
			return nil, fmt.Errorf("phonindex: sura %d aya %d: %w", aya.SuraIdx, aya.AyaIdx, err)
		}

		boundaries, phToUth, err := wordIndex(uthmaniClean, m)
		if err != nil {
			return nil, fmt.Errorf("phonindex: sura %d aya %d: %w", aya.SuraIdx, aya.AyaIdx, err)
		}

		groups := phonemegroup.Chunk(phonemes)
		var wordIdx int
		var localPh int
		for _, g := range groups {
			l := g.End - g.Start
			refNorm.WriteRune([]rune(g.Text)[0])

			row := Row{
				Sura:         aya.SuraIdx,
				Aya:          aya.AyaIdx,
				WordInAya:    uint16(wordIdx),
				UthCharStart: uint16(phToUth[localPh]),
				UthCharEnd:   uint16(phToUth[localPh+l]),
				PhStart:      phCursor,
				PhEnd:        phCursor + uint16(l),
			}
			idx.Rows = append(idx.Rows, row)

			localPh += l
			phCursor += uint16(l)

			if wordIdx < len(boundaries) && localPh >= boundaries[wordIdx] {
				wordIdx++
			}
		}
	}

	idx.RefNorm = refNorm.String()
	log.Info().Int("rows", len(idx.Rows)).Int("ref_norm_len", runeidx.CodepointCount(idx.RefNorm)).Msg("phonindex: build complete")
	return idx, nil
}

func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// wordIndex computes the word-boundary output indices (spec §4.5 step 5)
// and the codepoint-to-Uthmani-codepoint index (step 6).
func wordIndex(uthmaniClean string, m mapping.List) ([]int, []int, error) {
	runes := runeidx.Runes(uthmaniClean)
	var boundaries []int
	for i, r := range runes {
		if r != ' ' {
			continue
		}
		if i >= len(m) || !m[i].Deleted {
			return nil, nil, fmt.Errorf("expected mapping[%d] to be deleted for Uthmani space", i)
		}
		boundaries = append(boundaries, m[i].Start)
	}

	if len(m) == 0 {
		return boundaries, []int{0}, nil
	}

	lastEnd := m[len(m)-1].End
	phToUth := make([]int, lastEnd+1)
	for i, span := range m {
		for j := span.Start; j < span.End; j++ {
			phToUth[j] = i
		}
	}
	phToUth[lastEnd] = len(m)

	return boundaries, phToUth, nil
}
