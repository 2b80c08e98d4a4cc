package hc

import (
	"testing"

	"github.com/stvp/assert"
)

func TestIntRoundTripSmall(t *testing.T) {
	for prefix := byte(1); prefix <= 8; prefix++ {
		for _, v := range []uint64{0, 1, 2, 10, 1<<20 - 1, 1 << 20, 1<<30 + 7, 1<<62 - 1} {
			buf := AppendInt(nil, prefix, 0, v)
			d := NewIntDecoder(prefix)
			got, n, status := d.Decode(buf)
			assert.Equal(t, IntOK, status)
			assert.Equal(t, len(buf), n)
			assert.Equal(t, v, got)
		}
	}
}

func TestIntFragmentedFeedsNeedMoreUntilLastByte(t *testing.T) {
	buf := AppendInt(nil, 5, 0xc0, 1<<40+12345)
	assert.True(t, len(buf) > 2)
	d := NewIntDecoder(5)
	for i := 0; i < len(buf)-1; i++ {
		// Feed one byte at a time. The caller-supplied top bits stay
		// in the first byte; the decoder masks them off itself.
		_, _, status := d.Decode(buf[i : i+1])
		assert.Equal(t, IntNeedMore, status)
	}
	got, _, status := d.Decode(buf[len(buf)-1:])
	assert.Equal(t, IntOK, status)
	assert.Equal(t, uint64(1<<40+12345), got)
}

func TestIntOverflowTenContinuationBytes(t *testing.T) {
	// 8-bit prefix maxes the prefix value at 255; ten continuation
	// bytes, all with the high bit set, never terminate.
	buf := []byte{0xff}
	for i := 0; i < 10; i++ {
		buf = append(buf, 0x80)
	}
	d := NewIntDecoder(8)
	_, _, status := d.Decode(buf)
	assert.Equal(t, IntOverflow, status)
}

func TestIntEncodeShortBufferIsFallible(t *testing.T) {
	var tiny [1]byte
	n, ok := PutInt(tiny[:], 5, 0, uint64(1<<20))
	assert.False(t, ok)
	assert.Equal(t, 0, n)
}

func TestIntTopBitsPreserved(t *testing.T) {
	buf := AppendInt(nil, 6, 0xc0, 5)
	assert.Equal(t, byte(0xc0|5), buf[0])
}
