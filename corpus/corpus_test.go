package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/obadx/quran-transcript/corpus"
)

func TestLoad_AyaLookup(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)

	aya, ok := c.Aya(1, 1)
	require.True(t, ok)
	require.Equal(t, uint16(1), aya.SuraIdx)
	require.Equal(t, uint16(1), aya.AyaIdx)
	require.NotEmpty(t, aya.UthmaniWords)

	_, ok = c.Aya(9, 9)
	require.False(t, ok)
}

func TestLoad_GetAyatAfter(t *testing.T) {
	c, err := corpus.Load()
	require.NoError(t, err)

	rest := c.GetAyatAfter(1, 6)
	require.NotEmpty(t, rest)
	require.Equal(t, uint16(7), rest[0].AyaIdx)

	all := c.GetAyatAfter(0, 0)
	require.Equal(t, len(c.All()), len(all))
}
