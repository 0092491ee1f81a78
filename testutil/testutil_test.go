package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesDeterministic(t *testing.T) {
	a := NewRNG(4711).Bytes(64)
	b := NewRNG(4711).Bytes(64)

	assert.Equal(t, 64, len(a))
	assert.Equal(t, a, b)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Bytes(16)
	rng.Reset()
	b := rng.Bytes(16)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestBuffers(t *testing.T) {
	rng := NewRNG(4711)

	bufs := rng.Buffers(32, 100)

	require.Len(t, bufs, 32)
	for _, b := range bufs {
		assert.LessOrEqual(t, len(b), 100)
		assert.Equal(t, len(b), cap(b))
	}
}

func TestMisaligned(t *testing.T) {
	data := NewRNG(4711).Bytes(37)

	for off := range MaxMisalignment {
		b := Misaligned(data, off)
		assert.Equal(t, data, b)
		assert.Equal(t, off, Alignment(b))
	}
}

func TestMisalignedEmpty(t *testing.T) {
	b := Misaligned(nil, 3)

	assert.Empty(t, b)
}

func TestMisalignedNegativeOffset(t *testing.T) {
	data := []byte{1, 2, 3}

	for _, off := range []int{-1, -3, -8, -11} {
		b := Misaligned(data, off)
		assert.Equal(t, data, b)
		assert.Equal(t, (off%MaxMisalignment+MaxMisalignment)%MaxMisalignment, Alignment(b))
	}
	assert.Equal(t, 5, Alignment(Misaligned(data, -3)))
}
