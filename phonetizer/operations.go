// Package phonetizer implements the ordered pipeline of rewrite operations
// that converts Uthmani text into phonetic form (spec §4.4, C4).
//
// Each operation's (pattern, replacement) pairs are domain-specific
// regexes over the Uthmani/intermediate alphabet; per spec §2 these
// regex tables are data, not engineering, and a faithful full set spans
// thousands of entries accumulated over the life of the original project.
// This package implements the pipeline mechanism exactly per §4.4. Fifteen
// of the 23 operations carry a small representative regex table for the
// phenomenon they are named for (disassembly of disjoined letters,
// hamzat-wasl elision, madd elongation, qalqalah, ghonna, and a few
// letter normalizations); the other eight (special cases, ithbat yaa,
// middle hamzat wasl, waw alsalah, ghonna/idgham/iqlab preparation,
// iltiqaa alsakinayn, tasheel, imala) have empty tables and leave the text
// unchanged. The thousands-of-rule historical table is not reproduced
// (see DESIGN.md).
package phonetizer

import (
	"regexp"

	"github.com/obadx/quran-transcript/alphabet"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/operation"
	"github.com/obadx/quran-transcript/tajweed"
)

// re compiles a pattern. Builders call it, so an operation's patterns are
// recompiled each time its Build runs (once per Operation.Apply); the
// Moshaf-selected variant is fixed for that call.
func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

func rule(kind tajweed.Kind, tag string) *tajweed.Rule {
	r := tajweed.MustNew(kind, tag)
	return &r
}

// disassembleHrofMoqatta expands disjoined-letter openers (e.g. "الٓمٓ")
// into their spelled-out letter names.
var disassembleHrofMoqatta = &operation.Operation{
	ArabicName: "تفكيك الحروف المقطعة",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(`^الٓمٓ$`), Replacement: "ءَلِف لَاامممِۦم", Rule: rule(tajweed.NormalMadd, "alif")},
		}
	},
}

var specialCases = &operation.Operation{
	ArabicName: "حالات خاصة",
	Build: func(moshaf.Config) []operation.Reg {
		return nil
	},
}

// beginWithHamzatWasl elides the hamzat-wasl glyph when continuing
// recitation, since it is only pronounced when starting.
var beginWithHamzatWasl = &operation.Operation{
	ArabicName: "البدء بهمزة الوصل",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(`ٱ`), Replacement: "", Rule: nil},
		}
	},
}

var convertAlifMaksora = &operation.Operation{
	ArabicName: "تحويل الألف المقصورة",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(string(alphabet.Uthmani.AlifMaksora)), Replacement: string(alphabet.Phonetics.Alif), Rule: nil},
		}
	},
}

var normalizeHmazat = &operation.Operation{
	ArabicName: "تسوية الهمزات",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(`[أإؤئ]`), Replacement: "ء", Rule: nil},
		}
	},
}

var ithbatYaaYohie = &operation.Operation{
	ArabicName: "إثبات الياء في يحيي",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

var removeKasheeda = &operation.Operation{
	ArabicName: "إزالة الكشيدة",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re("ـ"), Replacement: "", Rule: nil},
		}
	},
}

var removeHmzatWaslMiddle = &operation.Operation{
	ArabicName: "إزالة همزة الوصل في الوسط",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

var removeSkoonMostadeer = &operation.Operation{
	ArabicName: "إزالة السكون المستدير",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re("۟"), Replacement: "", Rule: nil},
		}
	},
}

var skoonMostateel = &operation.Operation{
	ArabicName: "السكون المستطيل",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(string(alphabet.Uthmani.SkoonMostateel)), Replacement: "ْ", Rule: nil},
		}
	},
}

// maddAlewad elongates the compensatory madd at a stop (waqf) to the
// Moshaf-selected count, using the alif-fill codepoint repeated
// MaddAaredLen times (2 when MaddAaredLen is not positive).
var maddAlewad = &operation.Operation{
	ArabicName: "مد العوض",
	Build: func(cfg moshaf.Config) []operation.Reg {
		n := cfg.MaddAaredLen
		if n <= 0 {
			n = 2
		}
		r := rule(tajweed.MaddAared, "")
		return []operation.Reg{
			{Pattern: re(`ً$`), Replacement: repeatRune(alphabet.Phonetics.Alif, n), Rule: r},
		}
	},
}

var wawAlsalah = &operation.Operation{
	ArabicName: "واو الصلة",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

var enlargeSmallLetters = &operation.Operation{
	ArabicName: "تكبير الحروف الصغيرة",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re("ۥ"), Replacement: string(alphabet.Phonetics.WawMadd), Rule: nil},
			{Pattern: re("ۦ"), Replacement: string(alphabet.Phonetics.YaaMadd), Rule: nil},
		}
	},
}

var cleanEnd = &operation.Operation{
	ArabicName: "تنظيف النهاية",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(`\s+$`), Replacement: "", Rule: nil},
		}
	},
}

var normalizeTaa = &operation.Operation{
	ArabicName: "تسوية التاء",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re("ة"), Replacement: "ه", Rule: nil},
		}
	},
}

var addAlifIsmAllah = &operation.Operation{
	ArabicName: "إضافة الألف في اسم الله",
	Build: func(moshaf.Config) []operation.Reg {
		return []operation.Reg{
			{Pattern: re(`لِلَّه`), Replacement: "لِللَّاه", Rule: rule(tajweed.NormalMadd, "alif")},
		}
	},
}

var prepareGhonnaIdghamIqlab = &operation.Operation{
	ArabicName: "تمهيد الغنة والإدغام والإقلاب",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

var iltiqaaAlsaknan = &operation.Operation{
	ArabicName: "التقاء الساكنين",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

// ghonna marks the nasal hum on a geminated noon/meem.
var ghonna = &operation.Operation{
	ArabicName: "الغنة",
	Build: func(moshaf.Config) []operation.Reg {
		r := rule(tajweed.Ghonna, "")
		return []operation.Reg{
			{Pattern: re(`([نم])\x{0651}`), Replacement: "$1$1", Rule: r},
		}
	},
}

var tasheel = &operation.Operation{
	ArabicName: "التسهيل",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

var imala = &operation.Operation{
	ArabicName: "الإمالة",
	Build: func(moshaf.Config) []operation.Reg { return nil },
}

// madd elongates a fatha+alif sequence to two alif counts, the normal
// madd length; the Moshaf config is not consulted.
var madd = &operation.Operation{
	ArabicName: "المد",
	Build: func(moshaf.Config) []operation.Reg {
		r := rule(tajweed.NormalMadd, "alif")
		return []operation.Reg{
			{Pattern: re(`َا`), Replacement: "َ" + repeatRune(alphabet.Phonetics.Alif, 2), Rule: r},
		}
	},
}

// qalqla marks the qalqalah echo on a qalqalah letter that carries a
// sukoon.
var qalqla = &operation.Operation{
	ArabicName: "القلقلة",
	Build: func(moshaf.Config) []operation.Reg {
		r := rule(tajweed.Qalqalah, "")
		return []operation.Reg{
			{Pattern: re(`([قطبجد])\x{0652}`), Replacement: "$1" + string(alphabet.Phonetics.Qlqla), Rule: r},
		}
	},
}

func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

// OperationOrder is the fixed, process-wide pipeline order (spec §4.4).
var OperationOrder = []*operation.Operation{
	disassembleHrofMoqatta,
	specialCases,
	beginWithHamzatWasl,
	convertAlifMaksora,
	normalizeHmazat,
	ithbatYaaYohie,
	removeKasheeda,
	removeHmzatWaslMiddle,
	removeSkoonMostadeer,
	skoonMostateel,
	maddAlewad,
	wawAlsalah,
	enlargeSmallLetters,
	cleanEnd,
	normalizeTaa,
	addAlifIsmAllah,
	prepareGhonnaIdghamIqlab,
	iltiqaaAlsaknan,
	ghonna,
	tasheel,
	imala,
	madd,
	qalqla,
}

func init() {
	tajweed.RegisterRecognizer(tajweed.Qalqalah, func(s string) bool {
		for _, r := range s {
			if r == alphabet.Phonetics.Qlqla {
				return true
			}
		}
		return false
	})
	tajweed.RegisterRecognizer(tajweed.Ghonna, func(s string) bool {
		runes := []rune(s)
		for i := 0; i+1 < len(runes); i++ {
			if runes[i] == runes[i+1] && (runes[i] == 'ن' || runes[i] == 'م') {
				return true
			}
		}
		return false
	})

	maddTagDeriver := func(s string) (string, bool) {
		if s == "" {
			return "", false
		}
		tag, ok := alphabet.MaddToTag[[]rune(s)[0]]
		return tag, ok
	}
	for _, k := range []tajweed.Kind{
		tajweed.NormalMadd, tajweed.MaddMottasel, tajweed.MaddMonfasel,
		tajweed.MaddAared, tajweed.LeenMadd,
	} {
		tajweed.RegisterRecognizer(k, func(s string) bool {
			_, ok := maddTagDeriver(s)
			return ok
		})
		tajweed.RegisterTagDeriver(k, maddTagDeriver)
	}
}
