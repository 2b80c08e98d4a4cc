package hc

// This file produces the decoder-to-encoder instruction stream: the three
// outgoing notifications spec.md §4.7 "Decoder-stream output" describes.
// Unlike the encoder and header-block streams, nothing about this traffic
// is resumable on the writing side — each notification is a single
// complete integer, so the decoder always has room to describe what
// happened and leaves buffering of the actual bytes to the caller (same
// convention as QpackEncoder.EndHeader's prefixBuf).

// AcknowledgeHeaderBlock appends a header-block acknowledgement for
// streamID to dst, to be sent on the decoder-to-encoder stream once a
// header block on that stream has been fully decoded and delivered to the
// application. Callers typically call this right after DecodeHeaderBlock
// returns DecodeDone.
func (dec *QpackDecoder) AcknowledgeHeaderBlock(dst []byte, streamID uint64) []byte {
	return appendHeaderAck(dst, streamID)
}

// SyncInsertCount appends a table-state-synchronize instruction advancing
// the encoder's view of the acknowledged insert count by n entries beyond
// what header-block acknowledgements have already implied. Decoders that
// want the encoder to risk dynamic-table references sooner than the next
// full header-block completion call this after observing new
// EncStreamIn insertions.
func (dec *QpackDecoder) SyncInsertCount(dst []byte, n uint64) []byte {
	return appendTableSync(dst, n)
}

// CancelStream appends a stream-cancellation notification for streamID and
// releases every reference this decoder's dynamic table still holds on
// behalf of that stream's in-progress header block, if any (spec.md §5
// "Cancellation"). It is the decoder-side counterpart of
// QpackEncoder.CancelStream: callers invoke it when the embedding
// application abandons a stream before its header block finished decoding.
func (dec *QpackDecoder) CancelStream(dst []byte, streamID uint64) []byte {
	if st, ok := dec.streams[streamID]; ok {
		if st.nameRef != nil {
			dec.table.Release(st.nameRef)
			st.nameRef = nil
		}
		delete(dec.streams, streamID)
		if dec.blockedStreams[streamID] {
			delete(dec.blockedStreams, streamID)
		}
	}
	return appendStreamCancel(dst, streamID)
}
