package hc

// appendString writes a length-prefixed, optionally Huffman-coded string
// literal: a prefix-bits integer carrying the length (with hBit set in its
// top flag byte when Huffman coding was chosen), followed by the bytes.
// The shorter of the plain and Huffman encodings is always chosen
// (spec.md §8 scenario 2).
func appendString(dst []byte, top byte, prefix byte, hBit byte, s string) []byte {
	if hlen := HuffmanEncodedLen(s); hlen < len(s) {
		dst = AppendInt(dst, prefix, top|hBit, uint64(hlen))
		return AppendHuffman(dst, s)
	}
	dst = AppendInt(dst, prefix, top, uint64(len(s)))
	return append(dst, s...)
}

// stringReadStatus reports the outcome of one stringReader.Feed call.
type stringReadStatus int

const (
	stringNeedMore stringReadStatus = iota
	stringDone
	stringDestFull
	stringError
)

// stringReader resumably decodes one length-prefixed string literal,
// spanning both the length integer and, if Huffman-coded, the string body
// (spec.md §4.2, §4.7). A single instance is reused across header fields
// by calling reset.
type stringReader struct {
	inLen   bool
	intDec  *IntDecoder
	huffman bool
	huffDec *HuffmanDecoder
	remain  uint64 // encoded bytes of the body not yet fed to Feed
	out     []byte
}

func newStringReader() *stringReader {
	return &stringReader{huffDec: NewHuffmanDecoder()}
}

// reset prepares the reader for a new string whose length is encoded with
// the given prefix width.
func (r *stringReader) reset(prefix byte) {
	r.inLen = true
	r.intDec = NewIntDecoder(prefix)
	r.huffman = false
	r.huffDec.Reset()
	r.remain = 0
	r.out = r.out[:0]
}

// Feed consumes bytes of src, either continuing the length integer or
// copying/decoding the string body into the reader's own buffer. When the
// Huffman decoder reports that buffer full, Feed grows it and carries on,
// so Feed never returns stringDestFull. hMask identifies the Huffman flag
// bit in the first byte of the length integer.
func (r *stringReader) Feed(src []byte, hMask byte, final bool) (consumed int, status stringReadStatus) {
	i := 0
	if r.inLen {
		if len(src) == 0 {
			return 0, stringNeedMore
		}
		if r.intDec.bytesRead == 0 && r.intDec.state == intStateFirstByte {
			r.huffman = src[0]&hMask != 0
		}
		v, n, st := r.intDec.Decode(src)
		i += n
		switch st {
		case IntNeedMore:
			return i, stringNeedMore
		case IntOverflow:
			return i, stringError
		}
		r.inLen = false
		r.remain = v
	}
	avail := uint64(len(src) - i)
	take := r.remain
	if avail < take {
		take = avail
	}
	body := src[i : i+int(take)]
	if r.huffman {
		for {
			room := cap(r.out) - len(r.out)
			if room < 2 {
				r.out = append(r.out, make([]byte, 64)...)[:len(r.out)]
				continue
			}
			dstSlice := r.out[len(r.out):cap(r.out)]
			n, consumedBody, hstatus := r.huffDec.Decode(dstSlice, body, final && uint64(len(body)) == r.remain)
			r.out = r.out[:len(r.out)+n]
			body = body[consumedBody:]
			i += consumedBody
			r.remain -= uint64(consumedBody)
			if hstatus == HuffmanError {
				return i, stringError
			}
			if hstatus == HuffmanEndDst {
				continue
			}
			break
		}
	} else {
		r.out = append(r.out, body...)
		i += len(body)
		r.remain -= uint64(len(body))
	}
	if r.remain > 0 {
		return i, stringNeedMore
	}
	return i, stringDone
}

// String returns the fully decoded string once Feed has reported
// stringDone.
func (r *stringReader) String() string {
	return string(r.out)
}
