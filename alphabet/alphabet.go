// Package alphabet holds the codepoint constants and groups for the
// Uthmani and phonetic alphabets (spec §6, "Alphabet collaborator").
//
// These are data tables, not engineering: the mapping primitive (package
// mapping) and the phonetizer pipeline (package phonetizer) are agnostic to
// what any individual codepoint *means*, they only need stable identifiers
// to branch on. Naming follows the teacher's morph/phonology.go convention
// of small rune-set tables plus narrow is-X predicates.
package alphabet

// Uthmani holds codepoint constants for Uthmani Qur'anic orthography.
var Uthmani = struct {
	Space                  rune
	Shadda                 rune
	Kasra                  rune
	Dama                   rune
	Fatha                  rune
	Sukoon                 rune
	Hamza                  rune
	AlifMaksora            rune
	SkoonMostateel         rune
	TanweenIdhaamDterminer rune
	RasHaaa                rune
	LettersGroup           map[rune]bool
	HamazatGroup           map[rune]bool
}{
	Space:                  ' ',
	Shadda:                 'ّ',
	Kasra:                  'ِ',
	Dama:                   'ُ',
	Fatha:                  'َ',
	Sukoon:                 'ْ',
	Hamza:                  'ء',
	AlifMaksora:            'ى',
	SkoonMostateel:         'ۡ',
	TanweenIdhaamDterminer: 'ٍ', // kasratan, used as the idgham determiner in this table
	RasHaaa:                'ۙ',
	LettersGroup: map[rune]bool{
		'ا': true, 'ب': true, 'ت': true, 'ث': true, 'ج': true,
		'ح': true, 'خ': true, 'د': true, 'ذ': true, 'ر': true,
		'ز': true, 'س': true, 'ش': true, 'ص': true, 'ض': true,
		'ط': true, 'ظ': true, 'ع': true, 'غ': true, 'ف': true,
		'ق': true, 'ك': true, 'ل': true, 'م': true, 'ن': true,
		'ه': true, 'و': true, 'ي': true,
	},
	HamazatGroup: map[rune]bool{
		'ء': true, // hamza
		'أ': true, // alif with hamza above
		'إ': true, // alif with hamza below
		'ؤ': true, // waw with hamza above
		'ئ': true, // yaa with hamza above
		'ٱ': true, // alif wasla
	},
}

// Phonetics holds codepoint constants for the output phonetic alphabet.
var Phonetics = struct {
	Alif    rune
	WawMadd rune
	YaaMadd rune
	Qlqla   rune
}{
	Alif:    'ا',
	WawMadd: 'و',
	YaaMadd: 'ي',
	Qlqla:   'ڇ', // qalqalah marker codepoint, immediately following the qalqalah letter
}

// PhoneticGroups classifies output codepoints by phoneme-group role.
// Package phonindex does not read it: phoneme groups are chunked by
// internal/phonemegroup, which keeps its own tail-codepoint set.
var PhoneticGroups = struct {
	Harakat   map[rune]bool // vowel/diacritic tail members
	Residuals map[rune]bool // trailing madd-fill codepoints
}{
	Harakat: map[rune]bool{
		'َ': true, // fatha
		'ُ': true, // dama
		'ِ': true, // kasra
		'ْ': true, // sukoon
	},
	Residuals: map[rune]bool{
		'ا': true, // alif madd fill
		'و': true, // waw madd fill
		'ي': true, // yaa madd fill
	},
}

// IsQalqalahLetter reports whether r is one of the qalqalah letters
// (q, t, b, j, d — "qutb jad" in the mnemonic).
func IsQalqalahLetter(r rune) bool {
	switch r {
	case 'ق', 'ط', 'ب', 'ج', 'د':
		return true
	default:
		return false
	}
}

// MaddToTag maps the Leen Madd tail codepoint to its rule tag.
var MaddToTag = map[rune]string{
	Phonetics.Alif:    "alif",
	Phonetics.WawMadd: "waw",
	Phonetics.YaaMadd: "yaa",
}
