package phonetizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/phonetizer"
)

func TestPhonetize_CollapsesWhitespace(t *testing.T) {
	text, _, m, err := phonetizer.Phonetize("  بِسْمِ  اللَّهِ  ", moshaf.Default(), false)
	require.NoError(t, err)
	require.NotContains(t, text, "  ")
	require.NotEmpty(t, m)
}

func TestPhonetize_QalqalahTagged(t *testing.T) {
	_, _, m, err := phonetizer.Phonetize("يَقْطَعُ", moshaf.Default(), false)
	require.NoError(t, err)

	var sawQalqalah bool
	for _, span := range m {
		for _, r := range span.Rules {
			if r.Kind.NameEn() == "Qalqalah" {
				sawQalqalah = true
			}
		}
	}
	require.True(t, sawQalqalah, "expected at least one qalqalah-tagged span")
}

func TestPhonetize_RemoveSpaces(t *testing.T) {
	text, _, _, err := phonetizer.Phonetize("بِسْمِ اللَّهِ", moshaf.Default(), true)
	require.NoError(t, err)
	require.NotContains(t, text, " ")
}
