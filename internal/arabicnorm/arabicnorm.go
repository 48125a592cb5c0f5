// Package arabicnorm composes input text to NFC before it enters the
// codepoint-indexed pipeline, the same normalization gate the teacher
// applies ahead of its own tokenizer (azcase.ComposeNFC), implemented here
// over the real golang.org/x/text normalizer rather than a hand-rolled
// decomposition table.
package arabicnorm

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode Normalization Form C. Uthmani script text
// is occasionally distributed as base letter + combining diacritic
// sequences; composing first keeps codepoint counts stable across
// equivalent inputs.
func ComposeNFC(s string) string {
	return norm.NFC.String(s)
}
