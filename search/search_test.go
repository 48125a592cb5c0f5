package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/phonindex"
	"github.com/obadx/quran-transcript/search"
)

func buildSearcher(t *testing.T) *search.Searcher {
	t.Helper()
	c, err := corpus.Load()
	require.NoError(t, err)
	idx, err := phonindex.Build(c, moshaf.Default())
	require.NoError(t, err)
	return search.New(idx, c)
}

func TestSearch_ExactQueryMatches(t *testing.T) {
	s := buildSearcher(t)

	// the normalized reference stream always contains its own first few
	// codepoints, so an exact-length slice of ref_norm is a zero-edit hit.
	matches, err := s.Search("بسم", 0.2)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	require.Equal(t, uint16(1), matches[0].Start.Sura)
}

func TestSearch_NoResultsForGarbage(t *testing.T) {
	s := buildSearcher(t)
	_, err := s.Search("xyz123", 0.0)
	require.Error(t, err)
	var nr *search.NoResultsError
	require.ErrorAs(t, err, &nr)
}

func TestSearch_GetUthmani(t *testing.T) {
	s := buildSearcher(t)
	matches, err := s.Search("بسم", 0.2)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	text, err := s.GetUthmani(matches[0])
	require.NoError(t, err)
	require.NotEmpty(t, text)
}
