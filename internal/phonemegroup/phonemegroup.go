// Package phonemegroup implements the phoneme-group chunker shared by
// package sifat and package phonindex (spec §4.5 step 3, §6): each group is
// a consonant followed by its vowel/diacritic tail. Both callers must stay
// in lockstep on where a group starts and ends, so the boundary rule lives
// in exactly one place.
package phonemegroup

// Chunk splits a phonetized string into consonant+tail groups and returns
// each group's [start, end) codepoint span alongside its text.
func Chunk(phonemes string) []Group {
	runes := []rune(phonemes)
	var groups []Group
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && isTailRune(runes[j]) {
			j++
		}
		groups = append(groups, Group{Start: i, End: j, Text: string(runes[i:j])})
		i = j
	}
	return groups
}

// Group is one chunked phoneme group and its codepoint span in the
// phonetized string it was chunked from.
type Group struct {
	Start, End int
	Text       string
}

func isTailRune(r rune) bool {
	switch r {
	case 'ّ', 'ِ', 'ُ', 'َ', 'ْ', 'ً', 'ٍ', 'ٌ', 'ا', 'و', 'ي':
		return true
	default:
		return false
	}
}
