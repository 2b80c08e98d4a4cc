package hc

// Wire-format constants for the header-block and control-stream
// instructions (spec.md §4.6-§4.8, §6). Bit patterns follow RFC 9204
// exactly: the spec's tables describe the same layout less precisely
// (e.g. "1xxxxxxx") because the discriminator bits and the prefix-integer
// bits share a byte.

// Header-block instruction patterns, matched high bit first.
const (
	hbIndexedMask    = 0x80
	hbIndexedPattern = 0x80 // 1Txxxxxx, T = static/dynamic, prefix 6
	hbIndexedStatic  = 0x40 // T bit

	hbLiteralNameRefMask    = 0xc0
	hbLiteralNameRefPattern = 0x40 // 01NTxxxx, prefix 4
	hbLiteralNameRefNever   = 0x20 // N bit
	hbLiteralNameRefStatic  = 0x10 // T bit

	hbLiteralNoNameMask    = 0xe0
	hbLiteralNoNamePattern = 0x20 // 001NHxxx, prefix 3
	hbLiteralNoNameNever   = 0x10 // N bit
	hbLiteralNoNameHuffman = 0x08 // H bit on the name length

	hbIndexedPostBaseMask    = 0xf0
	hbIndexedPostBasePattern = 0x10 // 0001xxxx, prefix 4

	hbLiteralPostBaseMask    = 0xf0
	hbLiteralPostBasePattern = 0x00 // 0000Nxxx, prefix 3
	hbLiteralPostBaseNever   = 0x08 // N bit

	// valueHuffmanBit marks the H bit on a value-length byte, shared by
	// every representation that carries a value string.
	valueHuffmanBit = 0x80
)

// Encoder-stream instruction patterns (spec.md §4.7 "Encoder-stream
// instructions").
const (
	esInsertNameRefMask    = 0x80
	esInsertNameRefPattern = 0x80 // 1Txxxxxx, prefix 6
	esInsertNameRefStatic  = 0x40 // T bit

	esInsertNoNameMask    = 0xc0
	esInsertNoNamePattern = 0x40 // 01Hxxxxx, prefix 5
	esInsertNoNameHuffman = 0x20 // H bit on name length

	esSetCapacityMask    = 0xe0
	esSetCapacityPattern = 0x20 // 001xxxxx, prefix 5

	esDuplicateMask    = 0xe0
	esDuplicatePattern = 0x00 // 000xxxxx, prefix 5
)

// Decoder-stream instruction patterns (spec.md §4.7 "Decoder-stream
// output").
const (
	dsHeaderAckMask    = 0x80
	dsHeaderAckPattern = 0x80 // 1xxxxxxx, prefix 7

	dsTableSyncMask    = 0xc0
	dsTableSyncPattern = 0x00 // 00xxxxxx, prefix 6

	dsStreamCancelMask    = 0xc0
	dsStreamCancelPattern = 0x40 // 01xxxxxx, prefix 6
)
