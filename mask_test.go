package crc32c

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/crc32c/testutil"
)

func TestMask(t *testing.T) {
	crc := Checksum([]byte("foo"))

	assert.NotEqual(t, crc, Mask(crc))
	assert.NotEqual(t, crc, Mask(Mask(crc)))
	assert.Equal(t, crc, Unmask(Mask(crc)))
	assert.Equal(t, crc, Unmask(Unmask(Mask(Mask(crc)))))
}

func TestMaskKnownValues(t *testing.T) {
	assert.Equal(t, uint32(maskDelta), Mask(0))
	assert.Equal(t, uint32(0), Unmask(maskDelta))
	// 1 rotated right by 15 is 1<<17.
	assert.Equal(t, uint32(1<<17+maskDelta), Mask(1))
}

func TestMaskRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 1000 {
		c := rng.Uint32()
		assert.Equal(t, c, Unmask(Mask(c)))
	}
}
