// Package corpus is the Qur'an text collaborator (spec §6): it serves
// Aya lookups and a canonical-order iterator over a small embedded sample
// corpus. A production deployment would point this at the full Uthmani
// mushaf text; the embedded sample here is enough to exercise the index
// builder and search end to end.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	_ "embed"
)

//go:embed testdata/sample.tsv
var sampleTSV []byte

// Aya is one verse: its sura/aya coordinates, the raw Uthmani text, and
// the Uthmani text split on the Uthmani space into words (spec §6).
type Aya struct {
	SuraIdx      uint16
	AyaIdx       uint16
	Uthmani      string
	UthmaniWords []string
}

// Corpus holds an ordered, in-memory set of ayat.
type Corpus struct {
	ayat []Aya
	byID map[[2]uint16]int
}

// Load parses the embedded sample corpus. Rows are TSV:
// sura<TAB>aya<TAB>uthmani-text, ordered canonically.
func Load() (*Corpus, error) {
	return parse(sampleTSV)
}

func parse(raw []byte) (*Corpus, error) {
	c := &Corpus{byID: make(map[[2]uint16]int)}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("corpus: line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		var sura, aya uint16
		if _, err := fmt.Sscanf(fields[0], "%d", &sura); err != nil {
			return nil, fmt.Errorf("corpus: line %d: bad sura index: %w", lineNo, err)
		}
		if _, err := fmt.Sscanf(fields[1], "%d", &aya); err != nil {
			return nil, fmt.Errorf("corpus: line %d: bad aya index: %w", lineNo, err)
		}
		uthmani := fields[2]
		a := Aya{
			SuraIdx:      sura,
			AyaIdx:       aya,
			Uthmani:      uthmani,
			UthmaniWords: strings.Split(uthmani, " "),
		}
		c.byID[[2]uint16{sura, aya}] = len(c.ayat)
		c.ayat = append(c.ayat, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: scanning embedded sample: %w", err)
	}
	return c, nil
}

// Aya looks up one verse by its (sura, aya) coordinates.
func (c *Corpus) Aya(sura, aya uint16) (Aya, bool) {
	idx, ok := c.byID[[2]uint16{sura, aya}]
	if !ok {
		return Aya{}, false
	}
	return c.ayat[idx], true
}

// GetAyatAfter returns every aya from (sura, aya) (exclusive) through the
// end of the corpus, in canonical order. Passing (0, 0) returns the whole
// corpus.
func (c *Corpus) GetAyatAfter(sura, aya uint16) []Aya {
	if sura == 0 && aya == 0 {
		out := make([]Aya, len(c.ayat))
		copy(out, c.ayat)
		return out
	}
	idx, ok := c.byID[[2]uint16{sura, aya}]
	if !ok {
		return nil
	}
	out := make([]Aya, len(c.ayat)-idx-1)
	copy(out, c.ayat[idx+1:])
	return out
}

// All returns every aya in canonical order.
func (c *Corpus) All() []Aya {
	return c.GetAyatAfter(0, 0)
}
