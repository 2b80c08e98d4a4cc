package hc

// EncodeStatus reports the outcome of one QpackEncoder.Encode call.
type EncodeStatus int

const (
	// EncodeOK means both buffers received whatever bytes this header
	// needed (possibly zero, if it was a pure indexed reference).
	EncodeOK EncodeStatus = iota
	// EncodeNoBufEnc means encBuf was too small; no state was mutated.
	EncodeNoBufEnc
	// EncodeNoBufHdr means hdrBuf was too small; no state was mutated.
	EncodeNoBufHdr
)

// QpackEncoder is the encoder half of a QPACK connection: one instance per
// connection, driven synchronously by its caller (spec.md §4.6, §5).
type QpackEncoder struct {
	logged
	indexPreferences

	table                 *encDynamicTable
	maxTableCapacityLimit TableCapacity
	maxBlockedStreams     int
	currentStreamsAtRisk  int
	streamsAtRisk         map[uint64]int
	maxAckedInsertCount   AbsoluteIndex
	ackedCapacity         TableCapacity
	pending               map[uint64][]*headerBlockUsage // outstanding unacked blocks, oldest first, per stream
	cancelled             map[uint64]bool
}

// NewQpackEncoder creates an encoder whose dynamic table never exceeds
// maxTableCapacity and which risks at most maxBlockedStreams concurrently
// blocked decoder streams.
func NewQpackEncoder(maxTableCapacity TableCapacity, maxBlockedStreams int) *QpackEncoder {
	enc := &QpackEncoder{
		table:                 newEncDynamicTable(maxTableCapacity),
		maxTableCapacityLimit: maxTableCapacity,
		maxBlockedStreams:     maxBlockedStreams,
		streamsAtRisk:         make(map[uint64]int),
		pending:               make(map[uint64][]*headerBlockUsage),
		cancelled:             make(map[uint64]bool),
	}
	enc.initLogging()
	return enc
}

// SetMaxBlockedStreams adjusts the concurrent-risk budget.
func (enc *QpackEncoder) SetMaxBlockedStreams(n int) {
	enc.maxBlockedStreams = n
}

// SetCapacity changes the dynamic table's configured capacity, never above
// the connection's negotiated ceiling, and writes the encoder-stream
// instruction that keeps the decoder's mirrored table in sync. Entries
// are evicted only if unreferenced by any unacknowledged block.
func (enc *QpackEncoder) SetCapacity(capacity TableCapacity, encBuf []byte) (int, EncodeStatus) {
	if capacity > enc.maxTableCapacityLimit {
		capacity = enc.maxTableCapacityLimit
	}
	instr := appendSetCapacity(nil, capacity)
	if len(instr) > len(encBuf) {
		return 0, EncodeNoBufEnc
	}
	enc.table.SetCapacity(capacity, func(e *encEntry) bool { return !e.inUse() })
	copy(encBuf, instr)
	return len(instr), EncodeOK
}

// SetMaxTableCapacityLimit lowers or raises the negotiated ceiling a peer
// has agreed to; SetCapacity clamps to this value.
func (enc *QpackEncoder) SetMaxTableCapacityLimit(limit TableCapacity) {
	enc.maxTableCapacityLimit = limit
}

// DuplicateEntry re-inserts e under a fresh absolute id without changing
// its name or value, useful when the encoder wants to keep a
// frequently-reused entry from falling out of the capacity window
// (spec.md §4.7 "Duplicate"). It is not used by Encode's default
// selection policy, which always references the existing entry directly.
func (enc *QpackEncoder) DuplicateEntry(encBuf []byte, e *encEntry) (*encEntry, int, EncodeStatus) {
	instr := appendDuplicate(nil, enc.table.InsertCount(), e.id)
	if len(instr) > len(encBuf) {
		return nil, 0, EncodeNoBufEnc
	}
	dup, ok := enc.table.Insert(e.name, e.value, func(x *encEntry) bool { return !x.inUse() })
	if !ok {
		return nil, 0, EncodeNoBufEnc
	}
	copy(encBuf, instr)
	return dup, len(instr), EncodeOK
}

// StartHeader opens a new header block context for the given stream and
// block sequence number.
func (enc *QpackEncoder) StartHeader(streamID, seqno uint64) *HeaderBlockContext {
	return &HeaderBlockContext{
		usage: &headerBlockUsage{streamID: streamID, seqno: seqno},
		base:  enc.table.InsertCount(),
	}
}

func (enc *QpackEncoder) riskAllowed(ctx *HeaderBlockContext) bool {
	if ctx.usage.atRisk {
		return true
	}
	if enc.streamsAtRisk[ctx.usage.streamID] > 0 {
		return true
	}
	return enc.currentStreamsAtRisk < enc.maxBlockedStreams
}

func (enc *QpackEncoder) markAtRisk(ctx *HeaderBlockContext) {
	if ctx.usage.atRisk {
		return
	}
	ctx.usage.atRisk = true
	enc.currentStreamsAtRisk++
	enc.streamsAtRisk[ctx.usage.streamID]++
}

// canAdmit reports whether inserting an entry of size s would fit without
// evicting anything still in use (spec.md §4.6 "Eviction admission").
func (enc *QpackEncoder) canAdmit(s TableCapacity) bool {
	if s > enc.table.Capacity() {
		return false
	}
	if enc.table.Used()+s <= enc.table.Capacity() {
		return true
	}
	canEvict := func(e *encEntry) bool { return !e.inUse() }
	return enc.table.Used()+s-enc.table.evictableSize(canEvict) <= enc.table.Capacity()
}

// refLocation converts an absolute id into the block-relative or
// post-base form the header-block wire format uses (spec.md §4.6 "Base-
// index encoding").
func refLocation(base, id AbsoluteIndex) (postBase bool, value uint64) {
	if id <= base {
		return false, uint64(base - id)
	}
	return true, uint64(id - base - 1)
}

// Encode chooses a representation for hf and writes the encoder-stream
// bytes it requires (if any) to encBuf and the header-block bytes to
// hdrBuf. noIndex forces a literal representation and keeps the call from
// adding to the dynamic table, regardless of index preferences (spec.md §6
// "no_index"); the literal may still name a static or dynamic entry.
func (enc *QpackEncoder) Encode(ctx *HeaderBlockContext, encBuf, hdrBuf []byte, hf HeaderField, noIndex bool) (nEnc, nHdr int, status EncodeStatus) {
	never := hf.Sensitive
	wantIndex := !noIndex && enc.shouldIndex(hf, enc.table.Capacity())
	literalOnly := never || noIndex

	// Priority 1: exact static match.
	idx, ok := staticLookup(hf.Name, hf.Value)
	if ok && !literalOnly {
		hdr := appendIndexedStatic(nil, idx)
		if len(hdr) > len(hdrBuf) {
			return 0, 0, EncodeNoBufHdr
		}
		copy(hdrBuf, hdr)
		return 0, len(hdr), EncodeOK
	}

	// Priority 2: exact dynamic match.
	if !literalOnly {
		if e := enc.table.FindNameValue(hf.Name, hf.Value); e != nil {
			if e.id <= enc.maxAckedInsertCount || enc.riskAllowed(ctx) {
				return enc.commitIndexedDynamic(ctx, hdrBuf, e)
			}
		}
	}

	// Priority 3: static name match, using the static name index.
	if idx > 0 {
		return enc.encodeWithStaticNameMatch(ctx, encBuf, hdrBuf, hf, idx, never, wantIndex)
	}

	// Priority 4/5: dynamic name-only match, or nothing at all.
	if e := enc.table.FindName(hf.Name); e != nil {
		return enc.encodeWithDynamicNameMatch(ctx, encBuf, hdrBuf, hf, e, never, wantIndex)
	}
	return enc.encodeLiteralNoMatch(ctx, encBuf, hdrBuf, hf, never, wantIndex)
}

func (enc *QpackEncoder) commitIndexedDynamic(ctx *HeaderBlockContext, hdrBuf []byte, e *encEntry) (int, int, EncodeStatus) {
	hdr := appendIndexedDynamic(nil, ctx.base, e.id)
	if len(hdr) > len(hdrBuf) {
		return 0, 0, EncodeNoBufHdr
	}
	if e.id > enc.maxAckedInsertCount {
		enc.markAtRisk(ctx)
	}
	ctx.usage.reference(e)
	copy(hdrBuf, hdr)
	return 0, len(hdr), EncodeOK
}

// encodeWithStaticNameMatch handles priority 3: a static name-only match,
// optionally promoted to a new dynamic entry.
func (enc *QpackEncoder) encodeWithStaticNameMatch(ctx *HeaderBlockContext, encBuf, hdrBuf []byte, hf HeaderField, staticIdx int, never, wantIndex bool) (int, int, EncodeStatus) {
	if wantIndex && enc.canAdmit(hf.size()) && enc.riskAllowed(ctx) {
		encBytes := appendInsertNameRefStatic(nil, staticIdx, hf.Value)
		if len(encBytes) > len(encBuf) {
			return 0, 0, EncodeNoBufEnc
		}
		// The new entry takes the next absolute id; check hdrBuf before
		// Insert so a short buffer leaves the table unchanged.
		hdr := appendIndexedDynamic(nil, ctx.base, enc.table.InsertCount()+1)
		if len(hdr) > len(hdrBuf) {
			return 0, 0, EncodeNoBufHdr
		}
		e, ok := enc.table.Insert(hf.Name, hf.Value, func(e *encEntry) bool { return !e.inUse() })
		if !ok {
			// Insert refused admission; fall back to a literal.
		} else {
			enc.markAtRisk(ctx)
			ctx.usage.reference(e)
			copy(encBuf, encBytes)
			copy(hdrBuf, hdr)
			return len(encBytes), len(hdr), EncodeOK
		}
	}
	hdr := appendLiteralNameRef(nil, true, never, staticIdx, hf.Value)
	if len(hdr) > len(hdrBuf) {
		return 0, 0, EncodeNoBufHdr
	}
	copy(hdrBuf, hdr)
	return 0, len(hdr), EncodeOK
}

// encodeWithDynamicNameMatch handles priority 4: a dynamic name-only
// match, optionally indexed as a new entry that reuses the matched
// entry's name with the fresh value, while the old entry stays
// referenceable by others.
func (enc *QpackEncoder) encodeWithDynamicNameMatch(ctx *HeaderBlockContext, encBuf, hdrBuf []byte, hf HeaderField, match *encEntry, never, wantIndex bool) (int, int, EncodeStatus) {
	if wantIndex && enc.canAdmit(hf.size()) && enc.riskAllowed(ctx) {
		encBytes := appendInsertNameRefDynamic(nil, enc.table.InsertCount(), match.id, hf.Value)
		if len(encBytes) > len(encBuf) {
			return 0, 0, EncodeNoBufEnc
		}
		hdr := appendIndexedDynamic(nil, ctx.base, enc.table.InsertCount()+1)
		if len(hdr) > len(hdrBuf) {
			return 0, 0, EncodeNoBufHdr
		}
		e, ok := enc.table.Insert(hf.Name, hf.Value, func(e *encEntry) bool { return !e.inUse() })
		if ok {
			enc.markAtRisk(ctx)
			ctx.usage.reference(e)
			copy(encBuf, encBytes)
			copy(hdrBuf, hdr)
			return len(encBytes), len(hdr), EncodeOK
		}
	}
	hdr := appendLiteralNameRefDynamic(ctx.base, never, match.id, hf.Value)
	if len(hdr) > len(hdrBuf) {
		return 0, 0, EncodeNoBufHdr
	}
	if match.id > enc.maxAckedInsertCount {
		enc.markAtRisk(ctx)
	}
	ctx.usage.reference(match)
	copy(hdrBuf, hdr)
	return 0, len(hdr), EncodeOK
}

// encodeLiteralNoMatch handles priority 5: no usable match anywhere,
// optionally inserting the header as a brand-new entry.
func (enc *QpackEncoder) encodeLiteralNoMatch(ctx *HeaderBlockContext, encBuf, hdrBuf []byte, hf HeaderField, never, wantIndex bool) (int, int, EncodeStatus) {
	if wantIndex && enc.canAdmit(hf.size()) && enc.riskAllowed(ctx) {
		encBytes := appendInsertLiteral(nil, hf.Name, hf.Value)
		if len(encBytes) > len(encBuf) {
			return 0, 0, EncodeNoBufEnc
		}
		hdr := appendIndexedDynamic(nil, ctx.base, enc.table.InsertCount()+1)
		if len(hdr) > len(hdrBuf) {
			return 0, 0, EncodeNoBufHdr
		}
		e, ok := enc.table.Insert(hf.Name, hf.Value, func(e *encEntry) bool { return !e.inUse() })
		if ok {
			enc.markAtRisk(ctx)
			ctx.usage.reference(e)
			copy(encBuf, encBytes)
			copy(hdrBuf, hdr)
			return len(encBytes), len(hdr), EncodeOK
		}
	}
	hdr := appendLiteral(nil, never, hf.Name, hf.Value)
	if len(hdr) > len(hdrBuf) {
		return 0, 0, EncodeNoBufHdr
	}
	copy(hdrBuf, hdr)
	return 0, len(hdr), EncodeOK
}

// EndHeader closes the block, writes its prefix to prefixBuf, and records
// its usage so a later acknowledgement can release the entries it
// referenced.
func (enc *QpackEncoder) EndHeader(ctx *HeaderBlockContext, prefixBuf []byte) int {
	requiredInsertCount := ctx.usage.maxID
	prefix := appendBlockPrefix(nil, requiredInsertCount, ctx.base)
	if len(prefix) > len(prefixBuf) {
		return -1
	}
	copy(prefixBuf, prefix)
	enc.pending[ctx.usage.streamID] = append(enc.pending[ctx.usage.streamID], ctx.usage)
	return len(prefix)
}

// AcknowledgeHeaderBlock processes a decoder-stream header acknowledgement
// for the oldest outstanding block on streamID, releasing the references
// it held and, if it was at risk, freeing up risk budget.
func (enc *QpackEncoder) AcknowledgeHeaderBlock(streamID uint64) error {
	blocks := enc.pending[streamID]
	if len(blocks) == 0 {
		return ErrUnknownBlock
	}
	u := blocks[0]
	if len(blocks) == 1 {
		delete(enc.pending, streamID)
	} else {
		enc.pending[streamID] = blocks[1:]
	}
	u.release()
	if u.maxID > enc.maxAckedInsertCount {
		enc.maxAckedInsertCount = u.maxID
	}
	if u.atRisk {
		enc.currentStreamsAtRisk--
		enc.streamsAtRisk[streamID]--
		if enc.streamsAtRisk[streamID] <= 0 {
			delete(enc.streamsAtRisk, streamID)
		}
	}
	return nil
}

// AcknowledgeInsertCount processes a decoder-stream "insert count
// increment", advancing the acknowledged insert count without completing
// any particular header block (e.g. acks implied by the decoder simply
// having observed more encoder-stream inserts).
func (enc *QpackEncoder) AcknowledgeInsertCount(n uint64) error {
	newCount := enc.maxAckedInsertCount + AbsoluteIndex(n)
	if newCount > enc.table.InsertCount() {
		return ErrMalformedInstruction
	}
	enc.maxAckedInsertCount = newCount
	return nil
}

// CancelStream releases every reference held by unacknowledged blocks on
// streamID, as required when the decoder reports the stream cancelled
// (spec.md §5 "Cancellation").
func (enc *QpackEncoder) CancelStream(streamID uint64) error {
	blocks := enc.pending[streamID]
	for _, u := range blocks {
		u.release()
		if u.atRisk {
			enc.currentStreamsAtRisk--
		}
	}
	delete(enc.pending, streamID)
	delete(enc.streamsAtRisk, streamID)
	enc.cancelled[streamID] = true
	return nil
}

// PeerStreamIn parses as much as possible of the decoder-to-encoder
// instruction stream, applying each instruction it can fully decode from
// data and returning how many bytes were consumed. The caller retains any
// undecoded tail and passes it again, together with new bytes, on the
// next call (spec.md §4.8).
func (enc *QpackEncoder) PeerStreamIn(data []byte) (consumed int, err error) {
	for len(data) > 0 {
		b := data[0]
		var prefix byte
		switch {
		case b&dsHeaderAckMask == dsHeaderAckPattern:
			prefix = 7
		case b&dsTableSyncMask == dsTableSyncPattern:
			prefix = 6
		default:
			prefix = 6
		}
		d := NewIntDecoder(prefix)
		v, n, status := d.Decode(data)
		if status == IntNeedMore {
			return consumed, nil
		}
		if status == IntOverflow {
			return consumed, ErrMalformedInstruction
		}
		data = data[n:]
		consumed += n
		switch {
		case b&dsHeaderAckMask == dsHeaderAckPattern:
			if err := enc.AcknowledgeHeaderBlock(v); err != nil {
				return consumed, err
			}
		case b&dsTableSyncMask == dsTableSyncPattern:
			if err := enc.AcknowledgeInsertCount(v); err != nil {
				return consumed, err
			}
		default:
			if err := enc.CancelStream(v); err != nil {
				return consumed, err
			}
		}
	}
	return consumed, nil
}
