package mapping_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/tajweed"
)

// Scenario B (spec §8): apply C1 with pattern (a) -> \1\1\1 on "abcd" with
// a NormalMadd rule attached.
func TestApplyRegex_ScenarioB(t *testing.T) {
	rule := tajweed.MustNew(tajweed.NormalMadd, "alif")
	pattern := regexp.MustCompile(`a`)

	text, m, err := mapping.ApplyRegex(pattern, "aaa", "abcd", nil, &rule)
	require.NoError(t, err)
	require.Equal(t, "aaabcd", text)
	require.Len(t, m, 4)

	require.Equal(t, 0, m[0].Start)
	require.Equal(t, 3, m[0].End)
	require.False(t, m[0].Deleted)
	require.Equal(t, []tajweed.Rule{rule}, m[0].Rules)

	require.Equal(t, mapping.NonDeleted(3, 4), m[1])
	require.Equal(t, mapping.NonDeleted(4, 5), m[2])
	require.Equal(t, mapping.NonDeleted(5, 6), m[3])
}

// Same scenario, asserted as one structural diff over the whole List
// rather than span-by-span, so a regression in any span (including a
// dropped or misattached Rule) shows up as a single readable diff.
func TestApplyRegex_ScenarioB_StructuralDiff(t *testing.T) {
	rule := tajweed.MustNew(tajweed.NormalMadd, "alif")
	pattern := regexp.MustCompile(`a`)

	_, m, err := mapping.ApplyRegex(pattern, "aaa", "abcd", nil, &rule)
	require.NoError(t, err)

	want := mapping.List{
		mapping.NonDeleted(0, 3, rule),
		mapping.NonDeleted(3, 4),
		mapping.NonDeleted(4, 5),
		mapping.NonDeleted(5, 6),
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("mapping.List mismatch (-want +got):\n%s", diff)
	}
}

// Scenario C (spec §8): apply C1 with pattern d$ -> "" on "aaabcd"
// preceded by scenario B's mapping.
func TestApplyRegex_ScenarioC(t *testing.T) {
	rule := tajweed.MustNew(tajweed.NormalMadd, "alif")
	step1, m1, err := mapping.ApplyRegex(regexp.MustCompile(`a`), "aaa", "abcd", nil, &rule)
	require.NoError(t, err)
	require.Equal(t, "aaabcd", step1)

	text, m2, err := mapping.ApplyRegex(regexp.MustCompile(`d$`), "", step1, m1, nil)
	require.NoError(t, err)
	require.Equal(t, "aaabc", text)
	require.Len(t, m2, 4)

	last := m2[3]
	require.True(t, last.Deleted)
	require.Equal(t, 5, last.Start)
	require.Equal(t, 5, last.End)
}

// An identity substitution (a pattern that never matches) leaves both text
// and mapping unchanged (spec §8 invariant 6).
func TestApplyRegex_IdentitySubstitution(t *testing.T) {
	text, m, err := mapping.ApplyRegex(regexp.MustCompile(`ZZZ`), "Y", "hello", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "hello", text)
	require.Len(t, m, 5)
	for i, s := range m {
		require.Equal(t, i, s.Start)
		require.Equal(t, i+1, s.End)
		require.False(t, s.Deleted)
	}
}

// Space characters consumed by a substitution are always marked deleted
// (spec §8 invariant 4).
func TestApplyRegex_SpaceAbsorbedIntoPreceding(t *testing.T) {
	text, m, err := mapping.ApplyRegex(regexp.MustCompile(`a b`), "ab", "a b", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "ab", text)
	require.Len(t, m, 3)
	require.True(t, m[1].Deleted)
}
