package hc

import (
	"math/rand"
	"testing"

	"github.com/stvp/assert"
)

func TestHuffmanRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"www.example.com",
		"no-cache",
		"custom-key",
		"custom-value",
		"/sample/path",
		string([]byte{0, 1, 2, 255, 254, 253}),
	}
	for _, s := range cases {
		enc := AppendHuffman(nil, s)
		dec, err := DecodeHuffmanString(enc)
		assert.Nil(t, err)
		assert.Equal(t, s, dec)
	}
}

func TestHuffmanRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := r.Intn(64)
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = byte(r.Intn(256))
		}
		s := string(buf)
		enc := AppendHuffman(nil, s)
		dec, err := DecodeHuffmanString(enc)
		assert.Nil(t, err)
		assert.Equal(t, s, dec)
	}
}

func TestHuffmanFragmentedInput(t *testing.T) {
	s := "this is a moderately long header value for fragmentation testing"
	enc := AppendHuffman(nil, s)

	d := NewHuffmanDecoder()
	dst := make([]byte, len(s)+8)
	var out []byte
	okSeen := 0
	for i := 0; i < len(enc); i++ {
		final := i == len(enc)-1
		n, _, status := d.Decode(dst, enc[i:i+1], final)
		out = append(out, dst[:n]...)
		if status == HuffmanOK {
			okSeen++
		} else if status != HuffmanEndSrc {
			t.Fatalf("unexpected status %v at byte %d", status, i)
		}
	}
	assert.Equal(t, 1, okSeen)
	assert.Equal(t, s, string(out))
}

func TestHuffmanGrowsDestinationBuffer(t *testing.T) {
	s := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	enc := AppendHuffman(nil, s)
	d := NewHuffmanDecoder()
	dst := make([]byte, 2)
	var out []byte
	for {
		n, consumed, status := d.Decode(dst, enc, true)
		out = append(out, dst[:n]...)
		enc = enc[consumed:]
		if status == HuffmanOK {
			break
		}
		assert.Equal(t, HuffmanEndDst, status)
		dst = make([]byte, len(dst)*2)
	}
	assert.Equal(t, s, string(out))
}

func TestHuffmanFailsOnInvalidPadding(t *testing.T) {
	// Thirty-two one-bits contain the 30-bit end-of-string code, which
	// the decode DFA treats as a FAIL transition, so decoding fails.
	// Shorter runs of one-bits (under 30) end in an accepting state.
	d := NewHuffmanDecoder()
	dst := make([]byte, 8)
	src := []byte{0xff, 0xff, 0xff, 0xff}
	_, _, status := d.Decode(dst, src, true)
	assert.Equal(t, HuffmanError, status)
}

func TestHuffmanEncodedLenMatchesOutput(t *testing.T) {
	s := "accept-encoding"
	n := HuffmanEncodedLen(s)
	enc := AppendHuffman(nil, s)
	assert.Equal(t, n, len(enc))
}
