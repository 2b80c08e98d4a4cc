package hc

import (
	"testing"

	"github.com/stvp/assert"
)

// encodeOneBlock drives a full header block through Encode/EndHeader,
// growing buffers as needed, and returns the encoder-stream bytes and the
// header-block bytes (prefix included).
func encodeOneBlock(t *testing.T, enc *QpackEncoder, streamID uint64, block []HeaderField) (encOut, hdrOut []byte) {
	t.Helper()
	ctx := enc.StartHeader(streamID, streamID)
	encBuf := make([]byte, 256)
	hdrBuf := make([]byte, 256)
	for _, hf := range block {
		for {
			nEnc, nHdr, status := enc.Encode(ctx, encBuf, hdrBuf, hf, false)
			switch status {
			case EncodeOK:
				encOut = append(encOut, encBuf[:nEnc]...)
				hdrOut = append(hdrOut, hdrBuf[:nHdr]...)
			case EncodeNoBufEnc:
				encBuf = make([]byte, len(encBuf)*2)
				continue
			case EncodeNoBufHdr:
				hdrBuf = make([]byte, len(hdrBuf)*2)
				continue
			}
			break
		}
	}
	prefixBuf := make([]byte, 32)
	n := enc.EndHeader(ctx, prefixBuf)
	assert.True(t, n >= 0)
	full := append(append([]byte{}, prefixBuf[:n]...), hdrOut...)
	return encOut, full
}

// decodeOneBlock feeds a complete header block (no fragmentation) to a
// fresh per-stream context and expects it to finish without blocking.
func decodeOneBlock(t *testing.T, dec *QpackDecoder, streamID uint64, hdr []byte) []HeaderField {
	t.Helper()
	dec.StartHeaderBlock(streamID, len(hdr))
	status, headers, err := dec.DecodeHeaderBlock(streamID, hdr)
	assert.Nil(t, err)
	assert.Equal(t, DecodeDone, status)
	return headers
}

func headersEqual(t *testing.T, want, got []HeaderField) {
	t.Helper()
	assert.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Value, got[i].Value)
	}
}

func TestRoundTripStaticOnly(t *testing.T) {
	enc := NewQpackEncoder(0, 0)
	dec := NewQpackDecoder(0, 0)

	block := []HeaderField{{Name: ":path", Value: "/"}}
	_, hdr := encodeOneBlock(t, enc, 1, block)
	got := decodeOneBlock(t, dec, 1, hdr)
	headersEqual(t, block, got)
}

func TestRoundTripLiteralNoIndex(t *testing.T) {
	enc := NewQpackEncoder(0, 0)
	dec := NewQpackDecoder(0, 0)

	block := []HeaderField{{Name: "custom-key", Value: "custom-value"}}
	_, hdr := encodeOneBlock(t, enc, 1, block)
	got := decodeOneBlock(t, dec, 1, hdr)
	headersEqual(t, block, got)
}

// TestIndexedInsertionAndReuse is spec.md §8 scenario 3: an inserted entry
// is referenced as an indexed-dynamic representation on a later block with
// no further encoder-stream traffic, once the decoder has observed the
// insertion.
func TestIndexedInsertionAndReuse(t *testing.T) {
	enc := NewQpackEncoder(256, 10)
	dec := NewQpackDecoder(256, 10)

	block := []HeaderField{{Name: "x-foo", Value: "bar"}}
	encBytes, hdr1 := encodeOneBlock(t, enc, 1, block)
	assert.True(t, len(encBytes) > 0)

	if _, err := dec.EncStreamIn(encBytes); err != nil {
		t.Fatalf("EncStreamIn: %v", err)
	}
	assert.Equal(t, AbsoluteIndex(1), dec.InsertCount())

	got1 := decodeOneBlock(t, dec, 1, hdr1)
	headersEqual(t, block, got1)

	encBytes2, hdr2 := encodeOneBlock(t, enc, 2, block)
	assert.Equal(t, 0, len(encBytes2)) // pure indexed-dynamic reference, no new insert

	got2 := decodeOneBlock(t, dec, 2, hdr2)
	headersEqual(t, block, got2)
}

// TestBlockingUntilInsertArrives is spec.md §8 scenario 4.
func TestBlockingUntilInsertArrives(t *testing.T) {
	enc := NewQpackEncoder(256, 10)
	dec := NewQpackDecoder(256, 10)

	block := []HeaderField{{Name: "x-foo", Value: "bar"}}
	encBytes, hdr := encodeOneBlock(t, enc, 1, block)

	dec.StartHeaderBlock(1, len(hdr))
	status, headers, err := dec.DecodeHeaderBlock(1, hdr)
	assert.Nil(t, err)
	assert.Equal(t, DecodeBlocked, status)
	assert.Nil(t, headers)
	assert.Equal(t, 1, len(dec.BlockedStreams()))

	if _, err := dec.EncStreamIn(encBytes); err != nil {
		t.Fatalf("EncStreamIn: %v", err)
	}
	assert.Equal(t, 0, len(dec.BlockedStreams()))

	status, headers, err = dec.DecodeHeaderBlock(1, nil)
	assert.Nil(t, err)
	assert.Equal(t, DecodeDone, status)
	headersEqual(t, block, headers)
}

// TestEvictionNeverDropsReferencedEntry is spec.md §8 scenario 5 and the
// eviction invariant: filling the table with referenced entries must not
// let a later insert evict one of them.
func TestEvictionNeverDropsReferencedEntry(t *testing.T) {
	// Capacity 40 holds exactly one entry of size 32+2+2=36.
	enc := NewQpackEncoder(40, 10)

	ctx := enc.StartHeader(1, 1)
	encBuf := make([]byte, 64)
	hdrBuf := make([]byte, 64)
	nEnc, nHdr, status := enc.Encode(ctx, encBuf, hdrBuf, HeaderField{Name: "aa", Value: "bb"}, false)
	assert.Equal(t, EncodeOK, status)
	assert.True(t, nEnc > 0) // inserted
	_ = nHdr
	assert.Equal(t, TableCapacity(36), enc.table.Used())

	// Second distinct header wants indexing too, but the table is full
	// and the first entry is still referenced by this same open block;
	// it must fall back to a non-indexing literal rather than evict.
	nEnc2, _, status2 := enc.Encode(ctx, encBuf, hdrBuf, HeaderField{Name: "cc", Value: "dd"}, false)
	assert.Equal(t, EncodeOK, status2)
	assert.Equal(t, 0, nEnc2) // no encoder-stream insert happened
	assert.Equal(t, TableCapacity(36), enc.table.Used())
	assert.Equal(t, AbsoluteIndex(1), enc.table.InsertCount())
}

// TestIntegerBoundary checks that 2^62-1, the largest 62-bit value,
// round-trips through an 8-bit-prefix integer. The encoder-stream parser
// applies no 62-bit limit of its own: any value that fits in 64 bits
// decodes.
func TestIntegerBoundary(t *testing.T) {
	buf := AppendInt(nil, 8, 0, 1<<62-1)
	d := NewIntDecoder(8)
	v, n, status := d.Decode(buf)
	assert.Equal(t, IntOK, status)
	assert.Equal(t, n, len(buf))
	assert.Equal(t, uint64(1<<62-1), v)
}

func TestPseudoHeaderOrderingRejected(t *testing.T) {
	enc := NewQpackEncoder(0, 0)
	dec := NewQpackDecoder(0, 0)

	block := []HeaderField{
		{Name: "content-type", Value: "text/plain"},
		{Name: ":path", Value: "/"},
	}
	_, hdr := encodeOneBlock(t, enc, 1, block)

	dec.StartHeaderBlock(1, len(hdr))
	_, _, err := dec.DecodeHeaderBlock(1, hdr)
	assert.Equal(t, ErrPseudoHeaderOrder, err)
}

func TestNeverIndexPreserved(t *testing.T) {
	enc := NewQpackEncoder(4096, 10)
	dec := NewQpackDecoder(4096, 10)

	block := []HeaderField{{Name: "authorization", Value: "secret-token", Sensitive: true}}
	encBytes, hdr := encodeOneBlock(t, enc, 1, block)
	assert.Equal(t, 0, len(encBytes)) // sensitive fields are never indexed

	dec.StartHeaderBlock(1, len(hdr))
	status, headers, err := dec.DecodeHeaderBlock(1, hdr)
	assert.Nil(t, err)
	assert.Equal(t, DecodeDone, status)
	assert.Equal(t, 1, len(headers))
	assert.True(t, headers[0].Sensitive)
}

func TestFragmentedHeaderBlockByteAtATime(t *testing.T) {
	enc := NewQpackEncoder(256, 10)
	dec := NewQpackDecoder(256, 10)

	block := []HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: "x-custom", Value: "a moderately long value to span several bytes"},
	}
	encBytes, hdr := encodeOneBlock(t, enc, 1, block)
	if _, err := dec.EncStreamIn(encBytes); err != nil {
		t.Fatalf("EncStreamIn: %v", err)
	}

	dec.StartHeaderBlock(1, len(hdr))
	var final DecodeStatus
	var headers []HeaderField
	for i := 0; i < len(hdr); i++ {
		status, hs, err := dec.DecodeHeaderBlock(1, hdr[i:i+1])
		assert.Nil(t, err)
		if status == DecodeDone {
			final = status
			headers = hs
			assert.Equal(t, i, len(hdr)-1)
		}
	}
	assert.Equal(t, DecodeDone, final)
	headersEqual(t, block, headers)
}

func TestAcknowledgeAndCancelStream(t *testing.T) {
	enc := NewQpackEncoder(256, 10)

	block := []HeaderField{{Name: "x-foo", Value: "bar"}}
	_, hdr1 := encodeOneBlock(t, enc, 1, block)
	_ = hdr1

	if err := enc.AcknowledgeHeaderBlock(1); err != nil {
		t.Fatalf("AcknowledgeHeaderBlock: %v", err)
	}
	assert.Equal(t, AbsoluteIndex(1), enc.maxAckedInsertCount)

	_, hdr2 := encodeOneBlock(t, enc, 2, block)
	_ = hdr2
	if err := enc.CancelStream(2); err != nil {
		t.Fatalf("CancelStream: %v", err)
	}
	if err := enc.AcknowledgeHeaderBlock(2); err == nil {
		t.Fatalf("expected error acknowledging a cancelled stream's block")
	}
}
