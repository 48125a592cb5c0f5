// Package search implements the bounded-edit-distance phonetic substring
// search (spec §4.6, C6) over a loaded phonindex.Index: a query is
// normalized the same way the corpus was, matched against ref_norm within
// a configurable edit-distance ratio, and resolved back to aya/word/char
// spans. The edit-distance core follows the same row-DP technique the
// dictionary-correction spell checker uses for candidate scoring, adapted
// here from word-distance scoring to bounded substring matching.
package search

import (
	"fmt"

	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/internal/phonemegroup"
	"github.com/obadx/quran-transcript/internal/runeidx"
	"github.com/obadx/quran-transcript/phonindex"
)

// Span identifies one position in the corpus by aya/word/char/phoneme-index
// coordinates (spec §4.6, Match fields).
type Span struct {
	Sura      uint16
	Aya       uint16
	WordInAya uint16
	CharInAya uint16
	PhIndex   int
}

// Match is one fuzzy search hit. Start.PhIndex is the first matched
// phoneme row and End.PhIndex the last matched row (both inclusive);
// Start.CharInAya is the inclusive and End.CharInAya the exclusive Uthmani
// character bound.
type Match struct {
	Start Span
	End   Span
}

// NoResultsError reports that no substring of ref_norm matched the query
// within the requested edit-distance ratio (spec §7, NoResults).
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("search: no results for query %q", e.Query)
}

// Searcher owns a read-only loaded phoneme index (spec §5: safe to share
// across concurrent searches without locking).
type Searcher struct {
	idx *phonindex.Index
	cor *corpus.Corpus
}

// New constructs a Searcher over an already-loaded index and corpus.
func New(idx *phonindex.Index, cor *corpus.Corpus) *Searcher {
	return &Searcher{idx: idx, cor: cor}
}

// Search finds every substring of the corpus's normalized phoneme stream
// within floor(len(query_norm) * errorRatio) edits of the normalized query,
// and resolves each to a Match (spec §4.6). An errorRatio outside [0,1] or
// an empty query is rejected with an error; a query with no hits returns a
// *NoResultsError.
func (s *Searcher) Search(query string, errorRatio float64) ([]Match, error) {
	if errorRatio < 0 || errorRatio > 1 {
		return nil, fmt.Errorf("search: error ratio %v out of range [0,1]", errorRatio)
	}
	norm := normalize(query)
	if norm == "" {
		return nil, fmt.Errorf("search: query is empty")
	}

	qRunes := runeidx.Runes(norm)
	maxEdits := int(float64(len(qRunes)) * errorRatio)

	ref := runeidx.Runes(s.idx.RefNorm)
	windows := boundedSubstringMatches(qRunes, ref, maxEdits)
	if len(windows) == 0 {
		return nil, &NoResultsError{Query: query}
	}

	matches := make([]Match, 0, len(windows))
	for _, w := range windows {
		startSpan, err := s.rowToStartSpan(w.start)
		if err != nil {
			return nil, err
		}
		endSpan, err := s.rowToEndSpan(w.end - 1)
		if err != nil {
			return nil, err
		}
		matches = append(matches, Match{Start: startSpan, End: endSpan})
	}
	return matches, nil
}

// normalize reduces a phoneme string to its first-codepoint-per-group form,
// the same reduction the index builder applies to the corpus (spec §4.6
// step 1).
func normalize(phonemes string) string {
	groups := phonemegroup.Chunk(phonemes)
	out := make([]rune, len(groups))
	for i, g := range groups {
		out[i] = []rune(g.Text)[0]
	}
	return string(out)
}

func (s *Searcher) rowToStartSpan(phRow int) (Span, error) {
	row, err := s.rowAt(phRow)
	if err != nil {
		return Span{}, err
	}
	return Span{
		Sura: row.Sura, Aya: row.Aya, WordInAya: row.WordInAya,
		CharInAya: row.UthCharStart, PhIndex: phRow,
	}, nil
}

func (s *Searcher) rowToEndSpan(phRow int) (Span, error) {
	row, err := s.rowAt(phRow)
	if err != nil {
		return Span{}, err
	}
	return Span{
		Sura: row.Sura, Aya: row.Aya, WordInAya: row.WordInAya,
		CharInAya: row.UthCharEnd, PhIndex: phRow,
	}, nil
}

func (s *Searcher) rowAt(phRow int) (phonindex.Row, error) {
	if phRow < 0 || phRow >= len(s.idx.Rows) {
		return phonindex.Row{}, fmt.Errorf("search: phoneme row %d out of range [0,%d)", phRow, len(s.idx.Rows))
	}
	return s.idx.Rows[phRow], nil
}

// GetUthmani resolves a Match back to its Uthmani text (spec §4.6,
// get_uthmani): ayah words from the match's start through its end, joined
// by the Uthmani space codepoint, spanning crossed ayat when necessary.
func (s *Searcher) GetUthmani(m Match) (string, error) {
	if m.Start.Sura == m.End.Sura && m.Start.Aya == m.End.Aya {
		aya, ok := s.cor.Aya(m.Start.Sura, m.Start.Aya)
		if !ok {
			return "", fmt.Errorf("search: aya %d:%d not found", m.Start.Sura, m.Start.Aya)
		}
		if int(m.End.WordInAya) >= len(aya.UthmaniWords) {
			return "", fmt.Errorf("search: word index %d out of range for aya %d:%d", m.End.WordInAya, m.Start.Sura, m.Start.Aya)
		}
		words := aya.UthmaniWords[m.Start.WordInAya : m.End.WordInAya+1]
		return joinUthmani(words), nil
	}

	var words []string
	first, ok := s.cor.Aya(m.Start.Sura, m.Start.Aya)
	if !ok {
		return "", fmt.Errorf("search: aya %d:%d not found", m.Start.Sura, m.Start.Aya)
	}
	words = append(words, first.UthmaniWords[m.Start.WordInAya:]...)

	for _, aya := range s.cor.GetAyatAfter(m.Start.Sura, m.Start.Aya) {
		if aya.SuraIdx > m.End.Sura || (aya.SuraIdx == m.End.Sura && aya.AyaIdx > m.End.Aya) {
			break
		}
		if aya.SuraIdx == m.End.Sura && aya.AyaIdx == m.End.Aya {
			if int(m.End.WordInAya) >= len(aya.UthmaniWords) {
				return "", fmt.Errorf("search: word index %d out of range for aya %d:%d", m.End.WordInAya, aya.SuraIdx, aya.AyaIdx)
			}
			words = append(words, aya.UthmaniWords[:m.End.WordInAya+1]...)
			break
		}
		words = append(words, aya.UthmaniWords...)
	}

	return joinUthmani(words), nil
}

func joinUthmani(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}
