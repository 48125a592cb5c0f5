// Package sifat is the phonetic-attributes projector (spec §6): an
// external collaborator that classifies each phoneme group of a phonetized
// string along the canonical sifat dimensions (hams/jahr, shidda/rakhawa,
// tafkheem/tarqeeq, itbaq, safeer, qalqla, tikraar, tafashie, istitala,
// ghonna). The phonetizer pipeline treats this package as a leaf: it never
// touches the mapping, only the phoneme text already produced by C4.
package sifat

import (
	"github.com/obadx/quran-transcript/internal/phonemegroup"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/tajweed"
)

// Hams/Jahr etc. are small closed enumerations; tagged-union-by-string
// keeps this package free of a parallel class hierarchy per the same
// "Polymorphism" design note governing package tajweed.
type (
	HamsOrJahr     string
	ShiddaOrRakhawa string
	Tafkheem       string
)

const (
	Hams HamsOrJahr = "hams"
	Jahr HamsOrJahr = "jahr"

	Shadeedah    ShiddaOrRakhawa = "shadeedah"
	Rikhwa       ShiddaOrRakhawa = "rikhwa"
	BaynaBaynayn ShiddaOrRakhawa = "bayna_bayn"

	Mofakham Tafkheem = "mofakham"
	Moraqaq  Tafkheem = "moraqaq"
)

// Output is one phoneme group's attribute record (spec §6, SifaOutput).
type Output struct {
	Phoneme    string
	HamsJahr   HamsOrJahr
	Shidda     ShiddaOrRakhawa
	Tafkheem   Tafkheem
	Itbaq      bool
	Safeer     bool
	Qalqla     bool
	Tikraar    bool
	Tafashie   bool
	Istitala   bool
	Ghonna     bool
}

var mofakhamLetters = map[rune]bool{
	'خ': true, 'ص': true, 'ض': true, 'غ': true,
	'ط': true, 'ق': true, 'ظ': true,
}

var hamsLetters = map[rune]bool{
	'ف': true, 'ح': true, 'ث': true, 'ه': true,
	'ش': true, 'خ': true, 'ص': true, 'س': true,
	'ك': true, 'ت': true,
}

// Process classifies every phoneme-group leader rune of phonemes and
// returns one Output per group (spec §6). Groups are delimited the same
// way package phonindex chunks them: a consonant followed by its
// vowel/diacritic tail, so Process and phonindex's chunker must stay in
// lockstep on group boundaries.
func Process(uthmani, phonemes string, cfg moshaf.Config) ([]Output, error) {
	if phonemes == "" {
		return nil, nil
	}

	groups := phonemegroup.Chunk(phonemes)
	out := make([]Output, len(groups))
	for i, g := range groups {
		lead := []rune(g.Text)[0]
		out[i] = classify(g.Text, lead)
	}
	return out, nil
}

func classify(group string, lead rune) Output {
	o := Output{Phoneme: group}

	if hamsLetters[lead] {
		o.HamsJahr = Hams
	} else {
		o.HamsJahr = Jahr
	}

	if mofakhamLetters[lead] {
		o.Tafkheem = Mofakham
		o.Itbaq = lead == 'ص' || lead == 'ض' || lead == 'ط' || lead == 'ظ'
	} else {
		o.Tafkheem = Moraqaq
	}

	switch lead {
	case 'س', 'ص', 'ز':
		o.Safeer = true
	}
	switch lead {
	case 'ر':
		o.Tikraar = true
	case 'ش':
		o.Tafashie = true
	case 'ض':
		o.Istitala = true
	}

	q := tajweed.MustNew(tajweed.Qalqalah, "")
	o.Qalqla = q.IsPhStrIn(group)
	g := tajweed.MustNew(tajweed.Ghonna, "")
	o.Ghonna = g.IsPhStrIn(group)

	if lead == 'ن' || lead == 'م' {
		o.Shidda = BaynaBaynayn
	} else if isPlosive(lead) {
		o.Shidda = Shadeedah
	} else {
		o.Shidda = Rikhwa
	}

	return o
}

func isPlosive(r rune) bool {
	switch r {
	case 'ء', 'ق', 'ك', 'ج', 'ط', 'د', 'ت', 'ب':
		return true
	default:
		return false
	}
}
