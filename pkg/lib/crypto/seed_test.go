package crypto

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveSeed 测试种子规则
func TestResolveSeed(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		in := seedOf(7)
		out, err := ResolveSeed(in, nil)
		require.NoError(t, err)
		assert.Equal(t, in, out)

		// 返回副本
		out[0] = 0
		assert.Equal(t, byte(7), in[0])
	})

	t.Run("Empty_UsesReader", func(t *testing.T) {
		r := &countingReader{fill: 9}
		out, err := ResolveSeed(nil, r)
		require.NoError(t, err)
		assert.Equal(t, seedOf(9), out)
		assert.Equal(t, SeedSize, r.n)
	})

	t.Run("Empty_DefaultReader", func(t *testing.T) {
		a, err := ResolveSeed([]byte{}, nil)
		require.NoError(t, err)
		b, err := ResolveSeed(nil, nil)
		require.NoError(t, err)
		assert.Len(t, a, SeedSize)
		assert.NotEqual(t, a, b)
	})

	t.Run("WrongLength", func(t *testing.T) {
		for _, n := range []int{1, 16, 31, 33, 64} {
			_, err := ResolveSeed(make([]byte, n), nil)
			assert.ErrorIs(t, err, ErrInvalidSeed)
			assert.True(t, IsFormatError(err))
		}
	})

	t.Run("ReaderFailure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := ResolveSeed(nil, iotest.ErrReader(boom))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("ShortReader", func(t *testing.T) {
		_, err := ResolveSeed(nil, bytes.NewReader([]byte{1, 2, 3}))
		assert.Error(t, err)
	})
}

// TestWipe 测试清零
func TestWipe(t *testing.T) {
	b := seedOf(0xaa)
	Wipe(b)
	assert.Equal(t, make([]byte, SeedSize), b)

	// 空切片不 panic
	Wipe(nil)
}

// TestRandomBytes 测试随机字节
func TestRandomBytes(t *testing.T) {
	b, err := RandomBytes(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
}
