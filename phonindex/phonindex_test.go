package phonindex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/phonindex"
)

func TestBuild_ProducesRowsAndRefNorm(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)

	idx, err := phonindex.Build(c, moshaf.Default())
	require.NoError(t, err)
	require.NotEmpty(t, idx.Rows)
	require.Equal(t, len(idx.Rows), len([]rune(idx.RefNorm)))
}

func TestSaveLoad_RoundTrips(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)
	idx, err := phonindex.Build(c, moshaf.Default())
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, idx.Save(dir))

	loaded, err := phonindex.Load(dir)
	require.NoError(t, err)
	if diff := cmp.Diff(idx.Rows, loaded.Rows); diff != "" {
		t.Errorf("phonindex.Row round-trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, idx.RefNorm, loaded.RefNorm)
}
