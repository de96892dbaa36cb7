package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/numlib/polyreal/utils/sampling"
)

func TestKeyedPRNG(t *testing.T) {
	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb}

	t.Run("SameKeySameStream", func(t *testing.T) {
		a, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		b, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		bufA := make([]byte, 512)
		bufB := make([]byte, 512)
		a.Read(bufA)
		b.Read(bufB)
		require.Equal(t, bufA, bufB)
	})

	t.Run("Reset", func(t *testing.T) {
		a, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		first := make([]byte, 512)
		again := make([]byte, 512)
		a.Read(first)
		a.Reset()
		a.Read(again)
		require.Equal(t, first, again)
	})

	t.Run("Key", func(t *testing.T) {
		a, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		require.Equal(t, key, a.Key())
	})
}

func TestRandFloat64(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(nil)
	require.NoError(t, err)

	for i := 0; i < 1024; i++ {
		f := sampling.RandFloat64(prng, -10, 10)
		require.GreaterOrEqual(t, f, -10.0)
		require.LessOrEqual(t, f, 10.0)
	}
}
