// Package runeidx provides codepoint<->byte offset tables for strings that
// the rest of the module must address by codepoint index, never by byte.
//
// The engine this module supports (see package mapping) is defined entirely
// over codepoint offsets (spec §9), so every string that crosses a package
// boundary is first decomposed into runes and indexed with Build.
package runeidx

import "unicode/utf8"

// Table maps codepoint index -> byte offset for one string, plus the
// decoded runes themselves. len(Runes) == len(ByteOffsets)-1; ByteOffsets
// carries one trailing entry equal to len(original string), mirroring the
// teacher's chunker.buildRuneOffsets convention.
type Table struct {
	Runes       []rune
	ByteOffsets []int
}

// Build decodes s into a Table. Invalid UTF-8 bytes decode as
// utf8.RuneError, one codepoint per byte, matching a for-range loop over s.
func Build(s string) Table {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return Table{Runes: runes, ByteOffsets: offsets}
}

// Len returns the number of codepoints in the table.
func (t Table) Len() int { return len(t.Runes) }

// Slice returns the substring spanning codepoints [lo, hi).
func (t Table) Slice(s string, lo, hi int) string {
	return s[t.ByteOffsets[lo]:t.ByteOffsets[hi]]
}

// CodepointCount returns the number of codepoints (runes) in s.
func CodepointCount(s string) int {
	return utf8.RuneCountInString(s)
}

// Runes is a thin helper returning the codepoints of s as a slice.
func Runes(s string) []rune {
	return []rune(s)
}
