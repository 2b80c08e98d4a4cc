package hc

import "errors"

// Fatal errors. Any of these mean the connection must be torn down; none of
// them leave the table or codec state usable for further calls.
var (
	// ErrIntegerOverflow is returned by the integer decoder when the
	// accumulated value would exceed 64 bits, or when more than 10
	// continuation bytes have been read without termination.
	ErrIntegerOverflow = errors.New("hc: integer overflow")

	// ErrHuffmanFail is returned when the Huffman decode DFA reaches a
	// FAIL transition, or when a chunk marked final ends in a
	// non-accepting state.
	ErrHuffmanFail = errors.New("hc: invalid Huffman encoding")

	// ErrIndex is returned when a header block or instruction stream
	// references a table index that does not exist: an out-of-range
	// static index, or a dynamic index that has already been evicted or
	// was never inserted.
	ErrIndex = errors.New("hc: invalid table index")

	// ErrPseudoHeaderOrder indicates that a pseudo-header field
	// (":"-prefixed) followed a regular header field in the same block.
	ErrPseudoHeaderOrder = errors.New("hc: pseudo-header field out of order")

	// ErrCapacityExceeded is returned when an encoder-stream set-capacity
	// instruction asks for more than the negotiated capacity limit. Insert
	// instructions are not checked against it: an entry larger than the
	// current capacity empties the table instead of failing.
	ErrCapacityExceeded = errors.New("hc: insert exceeds dynamic table capacity")

	// ErrTooManyBlockedStreams is returned when a header block would
	// block decoding on more streams than the configured maximum.
	ErrTooManyBlockedStreams = errors.New("hc: too many blocked streams")

	// ErrMalformedInstruction is returned when an integer in a header
	// block or on the decoder-to-encoder stream overflows, or when an
	// insert count increment acknowledges more inserts than were sent.
	ErrMalformedInstruction = errors.New("hc: malformed instruction")

	// ErrUnknownBlock is returned when a header acknowledgement names a
	// stream with no outstanding header block at the encoder, or when
	// DecodeHeaderBlock is called for a stream that StartHeaderBlock did
	// not open.
	ErrUnknownBlock = errors.New("hc: reference to unknown header block")
)
