package hc

// DecodeStatus reports the outcome of one DecodeHeaderBlock call.
type DecodeStatus int

const (
	// DecodeNeedMore means all of data was consumed but the block is
	// not yet complete; call again with the next chunk.
	DecodeNeedMore DecodeStatus = iota
	// DecodeDone means the block finished; headers holds the result.
	DecodeDone
	// DecodeBlocked means the block references insertions the decoder
	// has not observed yet; it is parked until EncStreamIn advances the
	// local insert count far enough (spec.md §4.7, §5).
	DecodeBlocked
)

type blockPhase uint8

const (
	phaseReadRIC blockPhase = iota
	phaseReadBaseSign
	phaseReadBase
	phaseCheckBlocked
	phaseInstr
)

type instrPhase uint8

const (
	instrOpcode instrPhase = iota
	instrIndex
	instrName
	instrValue
)

type instrKind uint8

const (
	kindIndexed instrKind = iota
	kindLiteralNameRef
	kindLiteralNoName
	kindIndexedPostBase
	kindLiteralPostBase
)

// blockDecodeState is the per-stream resumable state for one header
// block, covering both the prefix and instruction phases of spec.md
// §4.7.
type blockDecodeState struct {
	streamID  uint64
	remaining int // bytes of this block not yet consumed
	stash     []byte

	phase    blockPhase
	ricDec   *IntDecoder
	baseDec  *IntDecoder
	ric      AbsoluteIndex
	base     AbsoluteIndex
	baseSign byte

	instrPh    instrPhase
	idxDec     *IntDecoder
	kind       instrKind
	never      bool
	static     bool
	idx        uint64
	name       string
	nameRef    *decEntry
	nameReader *stringReader
	valReader  *stringReader

	headers []HeaderField
}

func newBlockDecodeState(streamID uint64, blockSize int) *blockDecodeState {
	return &blockDecodeState{
		streamID:  streamID,
		remaining: blockSize,
		ricDec:    NewIntDecoder(8),
		phase:     phaseReadRIC,
	}
}

// QpackDecoder is the decoder half of a QPACK connection (spec.md §4.7,
// §5).
type QpackDecoder struct {
	logged

	table                 *decDynamicTable
	maxTableCapacityLimit TableCapacity
	maxBlockedStreams     int
	blocked               blockedQueue
	blockedStreams        map[uint64]bool
	streams               map[uint64]*blockDecodeState
}

// NewQpackDecoder creates a decoder whose dynamic table never exceeds
// maxTableCapacity and which will block at most maxBlockedStreams streams
// concurrently.
func NewQpackDecoder(maxTableCapacity TableCapacity, maxBlockedStreams int) *QpackDecoder {
	dec := &QpackDecoder{
		table:                 newDecDynamicTable(maxTableCapacity),
		maxTableCapacityLimit: maxTableCapacity,
		maxBlockedStreams:     maxBlockedStreams,
		blockedStreams:        make(map[uint64]bool),
		streams:               make(map[uint64]*blockDecodeState),
	}
	dec.initLogging()
	return dec
}

func (dec *QpackDecoder) InsertCount() AbsoluteIndex { return dec.table.InsertCount() }

// SetCapacity applies a locally-configured capacity independent of the
// encoder-stream "set capacity" instruction (e.g. a caller enforcing its
// own ceiling before any bytes have arrived).
func (dec *QpackDecoder) SetCapacity(capacity TableCapacity) {
	if capacity > dec.maxTableCapacityLimit {
		capacity = dec.maxTableCapacityLimit
	}
	dec.table.SetCapacity(capacity)
}

// StartHeaderBlock begins decoding a new header block of blockSize bytes
// on streamID. Only one block may be in flight per stream at a time.
func (dec *QpackDecoder) StartHeaderBlock(streamID uint64, blockSize int) {
	dec.streams[streamID] = newBlockDecodeState(streamID, blockSize)
}

// DecodeHeaderBlock feeds the next chunk of bytes for streamID's
// in-progress block. Call StartHeaderBlock first. On DecodeDone, the
// stream's state is cleared and headers holds the result; on
// DecodeBlocked, headers is nil and the block stays parked. Once
// EncStreamIn has advanced the insert count far enough, the caller
// resumes it by calling DecodeHeaderBlock again (with more bytes, or nil
// if none are pending).
func (dec *QpackDecoder) DecodeHeaderBlock(streamID uint64, data []byte) (status DecodeStatus, headers []HeaderField, err error) {
	st := dec.streams[streamID]
	if st == nil {
		return DecodeNeedMore, nil, ErrUnknownBlock
	}
	if len(st.stash) > 0 {
		data = append(st.stash, data...)
		st.stash = nil
	}
	for {
		switch st.phase {
		case phaseReadRIC:
			if len(data) == 0 {
				return DecodeNeedMore, nil, nil
			}
			v, n, s := st.ricDec.Decode(data)
			data, st.remaining = data[n:], st.remaining-n
			if s == IntNeedMore {
				return DecodeNeedMore, nil, nil
			}
			if s == IntOverflow {
				return DecodeNeedMore, nil, ErrMalformedInstruction
			}
			st.ric = AbsoluteIndex(v)
			st.phase = phaseReadBaseSign
		case phaseReadBaseSign:
			if len(data) == 0 {
				return DecodeNeedMore, nil, nil
			}
			st.baseSign = data[0] & 0x80
			st.baseDec = NewIntDecoder(7)
			st.phase = phaseReadBase
		case phaseReadBase:
			v, n, s := st.baseDec.Decode(data)
			data, st.remaining = data[n:], st.remaining-n
			if s == IntNeedMore {
				return DecodeNeedMore, nil, nil
			}
			if s == IntOverflow {
				return DecodeNeedMore, nil, ErrMalformedInstruction
			}
			if st.baseSign != 0 {
				st.base = st.ric - AbsoluteIndex(v)
			} else {
				st.base = st.ric + AbsoluteIndex(v)
			}
			st.phase = phaseCheckBlocked
		case phaseCheckBlocked:
			if st.ric > dec.table.InsertCount() {
				if !dec.blockedStreams[streamID] {
					if len(dec.blockedStreams) >= dec.maxBlockedStreams {
						return DecodeNeedMore, nil, ErrTooManyBlockedStreams
					}
					dec.blockedStreams[streamID] = true
					dec.blocked.Block(streamID, st.ric)
				}
				st.stash = data
				return DecodeBlocked, nil, nil
			}
			delete(dec.blockedStreams, streamID)
			st.phase = phaseInstr
			st.instrPh = instrOpcode
		case phaseInstr:
			if st.remaining == 0 {
				headers := st.headers
				delete(dec.streams, streamID)
				if err := validatePseudoHeaders(headers); err != nil {
					return DecodeNeedMore, nil, err
				}
				return DecodeDone, headers, nil
			}
			consumed, done, ferr := dec.stepInstr(st, data)
			data = data[consumed:]
			st.remaining -= consumed
			if ferr != nil {
				return DecodeNeedMore, nil, ferr
			}
			if !done {
				return DecodeNeedMore, nil, nil
			}
			// loop to process further instructions already buffered
		}
	}
}

// stepInstr advances the instruction-phase state machine by as much of
// data as it can consume. done is true once a complete header field (or a
// pure indexed reference) has been appended to st.headers.
func (dec *QpackDecoder) stepInstr(st *blockDecodeState, data []byte) (consumed int, done bool, err error) {
	for {
		switch st.instrPh {
		case instrOpcode:
			if len(data) == 0 {
				return consumed, false, nil
			}
			dec.beginInstr(st, data[0])

		case instrIndex:
			v, n, s := st.idxDec.Decode(data)
			consumed += n
			data = data[n:]
			if s == IntNeedMore {
				return consumed, false, nil
			}
			if s == IntOverflow {
				return consumed, false, ErrMalformedInstruction
			}
			st.idx = v
			if err := dec.resolveNameOrHeader(st); err != nil {
				return consumed, false, err
			}
			if st.kind == kindIndexed || st.kind == kindIndexedPostBase {
				st.instrPh = instrOpcode
				return consumed, true, nil
			}
			st.instrPh = instrValue
			if st.valReader == nil {
				st.valReader = newStringReader()
			}
			st.valReader.reset(7)

		case instrName:
			n, s := st.nameReader.Feed(data, hbLiteralNoNameHuffman, true)
			consumed += n
			data = data[n:]
			if s == stringNeedMore {
				return consumed, false, nil
			}
			if s == stringError {
				return consumed, false, ErrHuffmanFail
			}
			st.name = st.nameReader.String()
			st.instrPh = instrValue
			if st.valReader == nil {
				st.valReader = newStringReader()
			}
			st.valReader.reset(7)

		case instrValue:
			n, s := st.valReader.Feed(data, valueHuffmanBit, true)
			consumed += n
			if s == stringNeedMore {
				return consumed, false, nil
			}
			if s == stringError {
				return consumed, false, ErrHuffmanFail
			}
			value := st.valReader.String()
			st.headers = append(st.headers, HeaderField{Name: st.name, Value: value, Sensitive: st.never})
			if st.nameRef != nil {
				dec.table.Release(st.nameRef)
				st.nameRef = nil
			}
			st.instrPh = instrOpcode
			return consumed, true, nil
		}
	}
}

// beginInstr dispatches the opcode byte of a new instruction, setting up
// whichever sub-decoder the representation needs next. The opcode byte
// itself is not consumed here: it doubles as the first byte of the index
// or name-length integer that follows, which the next loop iteration
// reads directly (the same shared-byte convention the header-block
// prefix uses for its sign bit).
func (dec *QpackDecoder) beginInstr(st *blockDecodeState, b byte) {
	switch {
	case b&hbIndexedMask == hbIndexedPattern:
		st.kind = kindIndexed
		st.static = b&hbIndexedStatic != 0
		st.idxDec = NewIntDecoder(6)
		st.instrPh = instrIndex
	case b&hbLiteralNameRefMask == hbLiteralNameRefPattern:
		st.kind = kindLiteralNameRef
		st.never = b&hbLiteralNameRefNever != 0
		st.static = b&hbLiteralNameRefStatic != 0
		st.idxDec = NewIntDecoder(4)
		st.instrPh = instrIndex
	case b&hbLiteralNoNameMask == hbLiteralNoNamePattern:
		st.kind = kindLiteralNoName
		st.never = b&hbLiteralNoNameNever != 0
		if st.nameReader == nil {
			st.nameReader = newStringReader()
		}
		st.nameReader.reset(3)
		st.instrPh = instrName
	case b&hbIndexedPostBaseMask == hbIndexedPostBasePattern:
		st.kind = kindIndexedPostBase
		st.idxDec = NewIntDecoder(4)
		st.instrPh = instrIndex
	default: // 0000xxxx
		st.kind = kindLiteralPostBase
		st.never = b&hbLiteralPostBaseNever != 0
		st.idxDec = NewIntDecoder(3)
		st.instrPh = instrIndex
	}
}

// resolveNameOrHeader looks up the reference named by st.idx (and, for
// pure indexed representations, appends the resulting header directly).
func (dec *QpackDecoder) resolveNameOrHeader(st *blockDecodeState) error {
	switch st.kind {
	case kindIndexed:
		if st.static {
			name, value, ok := staticGet(int(st.idx))
			if !ok {
				return ErrIndex
			}
			st.headers = append(st.headers, HeaderField{Name: name, Value: value})
			return nil
		}
		e := dec.table.LookupRelative(st.base, st.idx)
		if e == nil {
			return ErrIndex
		}
		st.headers = append(st.headers, e.HeaderField())
		return nil
	case kindIndexedPostBase:
		e := dec.table.LookupAbsolute(st.base + 1 + AbsoluteIndex(st.idx))
		if e == nil {
			return ErrIndex
		}
		st.headers = append(st.headers, e.HeaderField())
		return nil
	case kindLiteralNameRef:
		if st.static {
			name, _, ok := staticGet(int(st.idx))
			if !ok {
				return ErrIndex
			}
			st.name = name
			return nil
		}
		e := dec.table.LookupRelative(st.base, st.idx)
		if e == nil {
			return ErrIndex
		}
		dec.table.Acquire(e)
		st.nameRef = e
		st.name = e.name
		return nil
	case kindLiteralPostBase:
		e := dec.table.LookupAbsolute(st.base + 1 + AbsoluteIndex(st.idx))
		if e == nil {
			return ErrIndex
		}
		dec.table.Acquire(e)
		st.nameRef = e
		st.name = e.name
		return nil
	}
	return nil
}
