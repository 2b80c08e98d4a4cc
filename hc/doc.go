// Package hc implements QPACK header compression for HTTP/3, as described
// by the IETF QUIC working group: a static table, a per-connection dynamic
// table shared between an encoder and a decoder over three logically
// distinct byte streams (encoder instructions, decoder acknowledgements,
// and header blocks), and the integer and Huffman codecs they both rely on.
//
// The codecs in this package are resumable: every parser can be fed
// arbitrarily fragmented input and will report that it needs more bytes
// rather than block, because QUIC delivers the three streams of a
// connection independently and a header block may arrive split across any
// number of packets, in any order relative to the encoder's instruction
// stream.
package hc
