package explainer_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/explainer"
	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/tajweed"
)

func TestExplain_IdenticalStreamsProduceNoErrors(t *testing.T) {
	_, m, err := mapping.ApplyRegex(regexp.MustCompile(`a`), "a", "abc", nil, nil)
	require.NoError(t, err)

	errs, err := explainer.Explain("abc", "abc", "abc", m)
	require.NoError(t, err)
	require.Empty(t, errs)
}

func TestExplain_SubstitutionIsReported(t *testing.T) {
	rule := tajweed.MustNew(tajweed.Qalqalah, "")
	_, m, err := mapping.ApplyRegex(regexp.MustCompile(`b`), "b", "abc", nil, &rule)
	require.NoError(t, err)

	errs, err := explainer.Explain("abc", "abc", "axc", m)
	require.NoError(t, err)
	require.NotEmpty(t, errs)
}

// A madd group that keeps its leading consonant but is held for the wrong
// number of beats aligns as Equal on leaders() alone (same leading
// consonant); Explain must still catch the length mismatch via the
// attached count-type rule.
func TestExplain_EqualLeaderButCountMismatchIsReported(t *testing.T) {
	rule := tajweed.MustNew(tajweed.NormalMadd, "alif")
	_, m, err := mapping.ApplyRegex(regexp.MustCompile(`ا`), "اا", "با", nil, &rule)
	require.NoError(t, err)

	errs, err := explainer.Explain("با", "باا", "باااا", m)
	require.NoError(t, err)

	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if e.Class == explainer.ClassTajweed && e.PredictedLen != e.ExpectedLen {
			found = true
		}
	}
	require.True(t, found, "expected a tajweed count mismatch, got %+v", errs)
}
