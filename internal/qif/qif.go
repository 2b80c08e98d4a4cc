// Package qif reads and writes the QIF (QPACK/HPACK Interop Format) header
// list files used by the interop test suites for this family of codecs:
// https://github.com/quicwg/base-drafts/wiki/QPACK-Offline-Interop
//
// A QIF file is a sequence of header blocks separated by blank lines; each
// header field within a block is one "name<TAB>value" line. Lines starting
// with '#' are comments and are skipped. This package is grounded on the
// teacher's hc/qif/qif_parse.go, adapted to hc.HeaderField and to also
// write QIF (the teacher's qif tool only ever wrote the framed binary
// stream, leaving QIF output to whatever produced its input).
package qif

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/quicwg/qpack-go/hc"
)

// Reader reads header blocks out of a QIF-formatted stream.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r as a QIF Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadHeaderBlock reads a single header block, returning io.EOF only if no
// bytes of a new block were read at all.
func (qr *Reader) ReadHeaderBlock() ([]hc.HeaderField, error) {
	var block []hc.HeaderField
	sawLine := false
	for {
		line, err := qr.r.ReadString('\n')
		if len(line) == 0 && err != nil {
			if err == io.EOF && sawLine {
				return block, nil
			}
			return nil, err
		}
		sawLine = true
		line = trimEOL(line)
		if len(line) == 0 {
			return block, nil
		}
		if line[0] == '#' {
			continue
		}
		parts := bytes.SplitN([]byte(line), []byte{'\t'}, 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("qif: malformed header line %q", line)
		}
		block = append(block, hc.HeaderField{Name: string(parts[0]), Value: string(parts[1])})
		if err == io.EOF {
			return block, nil
		}
	}
}

func trimEOL(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Writer writes header blocks in QIF format.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w as a QIF Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeaderBlock writes one header block followed by the blank line that
// separates blocks in the QIF format.
func (qw *Writer) WriteHeaderBlock(block []hc.HeaderField) error {
	for _, hf := range block {
		if _, err := fmt.Fprintf(qw.w, "%s\t%s\n", hf.Name, hf.Value); err != nil {
			return err
		}
	}
	_, err := io.WriteString(qw.w, "\n")
	return err
}
