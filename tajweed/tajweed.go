// Package tajweed models the recitation-rule annotations attached to
// mapping spans (spec §3.1, "TajweedRule").
//
// TajweedRule was originally a class hierarchy with abstract methods
// (is_ph_str_in, get_relevant_rule, count, match). Per §9's modelling note
// it is implemented here as a tagged union — a Kind enum plus a small
// dispatch table — rather than an interface hierarchy, matching the
// teacher's MorphTag-as-int-constant idiom (morph/morph.go) generalized
// with the handful of behaviors the rule actually needs.
package tajweed

import "fmt"

// Kind enumerates the TajweedRule variants.
type Kind int

const (
	NormalMadd Kind = iota
	MaddMottasel
	MaddMonfasel
	MaddAared
	LeenMadd
	Qalqalah
	Ghonna
	IdghamGhonna
	IdghamNoGhonna
	Ikhfa
	Iqlab
	Tasheel
	Imala
	Sakt
)

// CorrectnessType describes how a predicted recitation is compared against
// the reference for rules of this kind.
type CorrectnessType int

const (
	Match CorrectnessType = iota // predicted phoneme must equal reference phoneme
	Count                        // predicted elongation count is compared to GoldenLen
)

// kindMeta holds the static display/comparison metadata for one Kind.
type kindMeta struct {
	nameAr          string
	nameEn          string
	goldenLen       uint16
	correctnessType CorrectnessType
	allowedTags     map[string]bool // nil means "no tag constraint"
}

var metaTable = map[Kind]kindMeta{
	NormalMadd:     {nameAr: "مد طبيعي", nameEn: "Normal Madd", goldenLen: 2, correctnessType: Count, allowedTags: tagSet("alif", "waw", "yaa")},
	MaddMottasel:   {nameAr: "مد متصل", nameEn: "Connected Madd", goldenLen: 4, correctnessType: Count},
	MaddMonfasel:   {nameAr: "مد منفصل", nameEn: "Separated Madd", goldenLen: 4, correctnessType: Count},
	MaddAared:      {nameAr: "مد عارض للسكون", nameEn: "Madd for Stopping", goldenLen: 4, correctnessType: Count},
	LeenMadd:       {nameAr: "مد لين", nameEn: "Leen Madd", goldenLen: 2, correctnessType: Count, allowedTags: tagSet("alif", "waw", "yaa")},
	Qalqalah:       {nameAr: "قلقلة", nameEn: "Qalqalah", correctnessType: Match},
	Ghonna:         {nameAr: "غنة", nameEn: "Ghonna", goldenLen: 2, correctnessType: Count},
	IdghamGhonna:   {nameAr: "إدغام بغنة", nameEn: "Idgham With Ghonna", correctnessType: Match},
	IdghamNoGhonna: {nameAr: "إدغام بغير غنة", nameEn: "Idgham Without Ghonna", correctnessType: Match},
	Ikhfa:          {nameAr: "إخفاء", nameEn: "Ikhfa", correctnessType: Match},
	Iqlab:          {nameAr: "إقلاب", nameEn: "Iqlab", correctnessType: Match},
	Tasheel:        {nameAr: "تسهيل", nameEn: "Tasheel", correctnessType: Match},
	Imala:          {nameAr: "إمالة", nameEn: "Imala", correctnessType: Match},
	Sakt:           {nameAr: "سكت", nameEn: "Sakt", correctnessType: Match},
}

func tagSet(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

// Rule is one attached tajweed annotation: a Kind plus an optional subtype
// tag (e.g. "alif"/"waw"/"yaa" for madd rules).
type Rule struct {
	Kind Kind
	Tag  string // "" when the kind carries no subtype
}

// ErrTagInvalid is returned by New when tag is not in the kind's allowed set.
// Caller-facing per spec §7 ("TagInvalid ... construction-time fatal").
type ErrTagInvalid struct {
	Kind Kind
	Tag  string
}

func (e *ErrTagInvalid) Error() string {
	return fmt.Sprintf("tajweed: tag %q is not valid for rule %s", e.Tag, Kind(e.Kind).NameEn())
}

// New constructs a Rule, validating tag against the kind's allowed set.
func New(kind Kind, tag string) (Rule, error) {
	meta, ok := metaTable[kind]
	if !ok {
		return Rule{}, fmt.Errorf("tajweed: unknown rule kind %d", int(kind))
	}
	if tag != "" && meta.allowedTags != nil && !meta.allowedTags[tag] {
		return Rule{}, &ErrTagInvalid{Kind: kind, Tag: tag}
	}
	return Rule{Kind: kind, Tag: tag}, nil
}

// MustNew is New, panicking on error; for package-internal construction
// sites where the tag is a compile-time constant known to be valid.
func MustNew(kind Kind, tag string) Rule {
	r, err := New(kind, tag)
	if err != nil {
		panic(err)
	}
	return r
}

// NameEn returns the kind's English display name.
func (k Kind) NameEn() string { return metaTable[k].nameEn }

// NameAr returns the kind's Arabic display name.
func (k Kind) NameAr() string { return metaTable[k].nameAr }

// GoldenLen returns the canonical elongation count for count-type rules.
func (k Kind) GoldenLen() uint16 { return metaTable[k].goldenLen }

// CorrectnessType returns how predicted-vs-reference comparisons are made.
func (k Kind) CorrectnessType() CorrectnessType { return metaTable[k].correctnessType }

// IsPhStrIn reports whether any phoneme string in s exhibits this rule's
// signature pattern. This is a coarse capability used by the explainer to
// decide which rule, if any, a diverging span is "about" — concrete rules
// plug their own phoneme-pattern recognizers in via the registry below.
func (r Rule) IsPhStrIn(s string) bool {
	if rec, ok := recognizers[r.Kind]; ok {
		return rec(s)
	}
	return false
}

// GetRelevantRule returns the rule that s's phoneme content is recognized
// as exhibiting, under this rule's kind. Kinds with a registered tag
// deriver (the madd family, tagged by their elongation-fill codepoint)
// return a copy of r re-tagged from s; other kinds fall back to
// IsPhStrIn, returning r itself unchanged when s matches.
func (r Rule) GetRelevantRule(s string) (Rule, bool) {
	if deriver, ok := tagDerivers[r.Kind]; ok {
		tag, ok := deriver(s)
		if !ok {
			return Rule{}, false
		}
		return Rule{Kind: r.Kind, Tag: tag}, true
	}
	if r.IsPhStrIn(s) {
		return r, true
	}
	return Rule{}, false
}

// Count reports how many times ref's leading codepoint recurs in pred,
// the elongation count for Count-type rules (spec §3.1, "golden_len"
// comparison). A trailing codepoint that differs from pred's own lead is
// treated as stray tashkeel and excluded from the count. For Match-type
// rules it returns 0 (callers should use Match instead).
func (r Rule) Count(ref, pred string) uint32 {
	if r.Kind.CorrectnessType() != Count {
		return 0
	}
	refRunes := []rune(ref)
	predRunes := []rune(pred)
	if len(refRunes) == 0 || len(predRunes) == 0 {
		return 0
	}
	target := refRunes[0]
	body := predRunes
	if predRunes[len(predRunes)-1] != predRunes[0] {
		body = predRunes[:len(predRunes)-1]
	}
	var n uint32
	for _, r := range body {
		if r == target {
			n++
		}
	}
	return n
}

// Match reports whether pred is an acceptable recitation of ref under this
// rule, for Match-type rules.
func (r Rule) Match(ref, pred string) bool {
	if r.Kind.CorrectnessType() != Match {
		return ref == pred
	}
	return ref == pred
}

// recognizers maps a Kind to a phoneme-string predicate. Registered by
// phonetizer-adjacent code that knows the concrete phonetic signature
// (e.g. a qalqalah marker codepoint, a ghonna nasal tail); kept as an
// injectable table so package tajweed itself stays free of a dependency on
// package alphabet's full codepoint set beyond what's needed for tests.
var recognizers = map[Kind]func(string) bool{}

// RegisterRecognizer installs (or replaces) the IsPhStrIn predicate for
// kind. Intended to be called once at phonetizer package init.
func RegisterRecognizer(kind Kind, fn func(string) bool) {
	recognizers[kind] = fn
}

// tagDerivers maps a Kind to a function that derives this rule's subtype
// tag from a phoneme string's own signature, for kinds whose correct tag
// depends on what was actually recited rather than what the reference
// carries (the madd family: "alif"/"waw"/"yaa" per their fill codepoint).
var tagDerivers = map[Kind]func(string) (string, bool){}

// RegisterTagDeriver installs (or replaces) the tag-deriving function for
// kind, used by GetRelevantRule. Intended to be called once at
// phonetizer package init.
func RegisterTagDeriver(kind Kind, fn func(string) (string, bool)) {
	tagDerivers[kind] = fn
}
