package tajweed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/tajweed"
)

func TestRule_Count_CountsLeadingCodepointInPred(t *testing.T) {
	r := tajweed.MustNew(tajweed.NormalMadd, "alif")
	require.Equal(t, uint32(4), r.Count("ا", "اااا"))
}

func TestRule_Count_DropsTrailingStrayTashkeel(t *testing.T) {
	r := tajweed.MustNew(tajweed.NormalMadd, "alif")
	// Last codepoint isn't the lead: treated as stray tashkeel, excluded.
	require.Equal(t, uint32(2), r.Count("ا", "ااْ"))
}

func TestRule_Count_ZeroForMatchTypeRule(t *testing.T) {
	r := tajweed.MustNew(tajweed.Qalqalah, "")
	require.Equal(t, uint32(0), r.Count("ق", "قق"))
}

func TestRule_Match_ComparesRefAndPred(t *testing.T) {
	r := tajweed.MustNew(tajweed.Qalqalah, "")
	require.True(t, r.Match("ق", "ق"))
	require.False(t, r.Match("ق", "ك"))
}

func TestRule_GetRelevantRule_FallsBackToIsPhStrIn(t *testing.T) {
	tajweed.RegisterRecognizer(tajweed.Qalqalah, func(s string) bool {
		return s == "ق"
	})
	r := tajweed.MustNew(tajweed.Qalqalah, "")

	got, ok := r.GetRelevantRule("ق")
	require.True(t, ok)
	require.Equal(t, r, got)

	_, ok = r.GetRelevantRule("ك")
	require.False(t, ok)
}

func TestRule_GetRelevantRule_DerivesTagFromPredWhenRegistered(t *testing.T) {
	tajweed.RegisterTagDeriver(tajweed.NormalMadd, func(s string) (string, bool) {
		switch {
		case s == "ا":
			return "alif", true
		case s == "و":
			return "waw", true
		default:
			return "", false
		}
	})
	r := tajweed.MustNew(tajweed.NormalMadd, "alif")

	got, ok := r.GetRelevantRule("و")
	require.True(t, ok)
	require.Equal(t, "waw", got.Tag)
	require.Equal(t, tajweed.NormalMadd, got.Kind)

	_, ok = r.GetRelevantRule("ب")
	require.False(t, ok)
}

func TestNew_RejectsTagNotInAllowedSet(t *testing.T) {
	_, err := tajweed.New(tajweed.NormalMadd, "nope")
	require.Error(t, err)

	var tagErr *tajweed.ErrTagInvalid
	require.ErrorAs(t, err, &tagErr)
}

func TestKind_GoldenLenAndCorrectnessType(t *testing.T) {
	require.Equal(t, uint16(2), tajweed.NormalMadd.GoldenLen())
	require.Equal(t, tajweed.Count, tajweed.NormalMadd.CorrectnessType())
	require.Equal(t, tajweed.Match, tajweed.Qalqalah.CorrectnessType())
}
