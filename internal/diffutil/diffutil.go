// Package diffutil generates the codepoint-level Levenshtein edit script
// that package mapping walks to synthesize a source-to-output position map.
//
// It wraps github.com/pmezard/go-difflib's SequenceMatcher (a Go port of
// CPython's difflib, itself an implementation of the Ratcliff/Obershelp
// longest-matching-block algorithm). SequenceMatcher.GetOpCodes already
// returns opcodes left-to-right with maximal equal runs, which in practice
// satisfies the "Equal before Insert before Replace" ordering spec §9
// requires at a boundary. normalize() only merges adjacent same-kind
// opcodes; it neither reorders opcodes nor checks that ordering.
package diffutil

import (
	"github.com/pmezard/go-difflib/difflib"
)

// OpKind classifies one edit-script operation.
type OpKind int

const (
	Equal OpKind = iota
	Insert
	Replace
	Delete
)

func (k OpKind) String() string {
	switch k {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Replace:
		return "Replace"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Op is one codepoint-range edit-script entry. Ranges are half-open
// codepoint indices, [SrcLo,SrcHi) into the source runes and [DstLo,DstHi)
// into the destination runes.
type Op struct {
	Kind           OpKind
	SrcLo, SrcHi   int
	DstLo, DstHi   int
}

// Diff computes the codepoint-level edit script turning src into dst.
// Both slices are the decoded runes of the two strings (never raw bytes —
// the engine is defined over codepoints, spec §9).
func Diff(src, dst []rune) []Op {
	a := runesToTokens(src)
	b := runesToTokens(dst)

	m := difflib.NewMatcher(a, b)
	codes := m.GetOpCodes()

	ops := make([]Op, 0, len(codes))
	for _, c := range codes {
		kind, ok := kindFromTag(c.Tag)
		if !ok {
			continue
		}
		ops = append(ops, Op{
			Kind:  kind,
			SrcLo: c.I1, SrcHi: c.I2,
			DstLo: c.J1, DstHi: c.J2,
		})
	}
	return normalize(ops)
}

// runesToTokens turns a rune slice into the []string SequenceMatcher wants,
// one token per codepoint so edit distances are codepoint-granular.
func runesToTokens(rs []rune) []string {
	toks := make([]string, len(rs))
	for i, r := range rs {
		toks[i] = string(r)
	}
	return toks
}

func kindFromTag(tag byte) (OpKind, bool) {
	switch tag {
	case 'e':
		return Equal, true
	case 'i':
		return Insert, true
	case 'd':
		return Delete, true
	case 'r':
		return Replace, true
	default:
		return Equal, false
	}
}

// normalize merges adjacent opcodes of the same kind (a defensive pass;
// go-difflib does not emit these, but splitting a Replace that spans a
// long run into Insert+Equal+Replace components downstream depends on
// there being no spurious same-kind boundary). The order of the opcodes is
// left exactly as go-difflib produced it.
func normalize(ops []Op) []Op {
	if len(ops) == 0 {
		return ops
	}
	out := make([]Op, 0, len(ops))
	for _, op := range ops {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Kind == op.Kind && last.SrcHi == op.SrcLo && last.DstHi == op.DstLo {
				last.SrcHi = op.SrcHi
				last.DstHi = op.DstHi
				continue
			}
		}
		out = append(out, op)
	}
	return out
}
