package qif

import (
	"bufio"
	"encoding/binary"
	"io"
)

// Stream framing for the binary encoder-stream/header-block file that
// accompanies a QIF text file in interop testing: each frame is a 64-bit
// big-endian stream id (0 for the shared encoder stream), a 32-bit
// big-endian byte length, and that many bytes of payload. This mirrors the
// teacher's hc/qif encoder.go/decoder.go framing (there built on a
// bit-oriented reader/writer borrowed from HPACK's io package); QPACK's
// streams are always byte-aligned, so plain encoding/binary replaces the
// bit-level machinery that framing never actually needed.
type FrameWriter struct {
	w *bufio.Writer
}

func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{w: bufio.NewWriter(w)}
}

// WriteFrame writes one frame, doing nothing if payload is empty (an empty
// frame carries no information and the interop tooling's readers treat a
// zero-length stream as "nothing happened here").
func (fw *FrameWriter) WriteFrame(streamID uint64, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	var hdr [12]byte
	binary.BigEndian.PutUint64(hdr[0:8], streamID)
	binary.BigEndian.PutUint32(hdr[8:12], uint32(len(payload)))
	if _, err := fw.w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := fw.w.Write(payload)
	return err
}

func (fw *FrameWriter) Flush() error { return fw.w.Flush() }

type FrameReader struct {
	r *bufio.Reader
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: bufio.NewReader(r)}
}

// ReadFrame reads the next frame, returning io.EOF once the underlying
// stream is exhausted between frames.
func (fr *FrameReader) ReadFrame() (streamID uint64, payload []byte, err error) {
	var hdr [12]byte
	if _, err := io.ReadFull(fr.r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, nil, io.EOF
		}
		return 0, nil, err
	}
	streamID = binary.BigEndian.Uint64(hdr[0:8])
	length := binary.BigEndian.Uint32(hdr[8:12])
	payload = make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return 0, nil, err
	}
	return streamID, payload, nil
}
