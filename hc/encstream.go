package hc

// EncStreamIn parses as much as possible of the encoder-to-decoder
// instruction stream, applying each instruction it can fully decode from
// data to the dynamic table and returning how many bytes were consumed.
// The caller retains any undecoded tail and passes it again, together
// with new bytes, on the next call, mirroring QpackEncoder.PeerStreamIn
// (spec.md §4.7).
func (dec *QpackDecoder) EncStreamIn(data []byte) (consumed int, err error) {
	for len(data) > 0 {
		n, err := dec.stepEncInstr(data)
		if n == 0 {
			return consumed, err
		}
		consumed += n
		data = data[n:]
		if err != nil {
			return consumed, err
		}
	}
	dec.wake()
	return consumed, nil
}

// stepEncInstr decodes a single encoder-stream instruction from the start
// of data. It returns n == 0 if data does not yet hold a complete
// instruction.
func (dec *QpackDecoder) stepEncInstr(data []byte) (n int, err error) {
	b := data[0]
	switch {
	case b&esInsertNameRefMask == esInsertNameRefPattern:
		return dec.stepInsertNameRef(data, b&esInsertNameRefStatic != 0)
	case b&esInsertNoNameMask == esInsertNoNamePattern:
		return dec.stepInsertNoName(data)
	case b&esSetCapacityMask == esSetCapacityPattern:
		d := NewIntDecoder(5)
		v, used, status := d.Decode(data)
		if status == IntNeedMore {
			return 0, nil
		}
		if status == IntOverflow {
			return used, ErrIntegerOverflow
		}
		if TableCapacity(v) > dec.maxTableCapacityLimit {
			return used, ErrCapacityExceeded
		}
		dec.table.SetCapacity(TableCapacity(v))
		return used, nil
	default: // esDuplicatePattern, 000xxxxx
		d := NewIntDecoder(5)
		v, used, status := d.Decode(data)
		if status == IntNeedMore {
			return 0, nil
		}
		if status == IntOverflow {
			return used, ErrIntegerOverflow
		}
		id := dec.table.InsertCount() - AbsoluteIndex(v)
		src := dec.table.LookupAbsolute(id)
		if src == nil {
			return used, ErrIndex
		}
		dec.table.Duplicate(src)
		return used, nil
	}
}

func (dec *QpackDecoder) stepInsertNameRef(data []byte, static bool) (n int, err error) {
	d := NewIntDecoder(6)
	idx, used, status := d.Decode(data)
	if status == IntNeedMore {
		return 0, nil
	}
	if status == IntOverflow {
		return used, ErrIntegerOverflow
	}
	var name string
	if static {
		nm, _, ok := staticGet(int(idx))
		if !ok {
			return used, ErrIndex
		}
		name = nm
	} else {
		e := dec.table.LookupAbsolute(dec.table.InsertCount() - AbsoluteIndex(idx))
		if e == nil {
			return used, ErrIndex
		}
		name = e.name
	}
	value, valUsed, sstatus := decodeFullString(data[used:], 7, valueHuffmanBit)
	if sstatus == stringNeedMore {
		return 0, nil
	}
	if sstatus == stringError {
		return used + valUsed, ErrHuffmanFail
	}
	dec.table.Push(name, value)
	return used + valUsed, nil
}

func (dec *QpackDecoder) stepInsertNoName(data []byte) (n int, err error) {
	name, nameUsed, status := decodeFullString(data, 5, esInsertNoNameHuffman)
	if status == stringNeedMore {
		return 0, nil
	}
	if status == stringError {
		return nameUsed, ErrHuffmanFail
	}
	value, valUsed, status := decodeFullString(data[nameUsed:], 7, valueHuffmanBit)
	if status == stringNeedMore {
		return 0, nil
	}
	if status == stringError {
		return nameUsed + valUsed, ErrHuffmanFail
	}
	dec.table.Push(name, value)
	return nameUsed + valUsed, nil
}

// decodeFullString attempts to decode one complete length-prefixed string
// from the start of data, returning stringNeedMore if data does not yet
// hold it all. Unlike stringReader's normal use in DecodeHeaderBlock, this
// never carries partial progress across calls: the encoder stream's
// caller is expected to retry with the full accumulated buffer, matching
// PeerStreamIn's instruction-level retry contract.
func decodeFullString(data []byte, prefix byte, hMask byte) (s string, consumed int, status stringReadStatus) {
	r := newStringReader()
	r.reset(prefix)
	n, st := r.Feed(data, hMask, true)
	if st != stringDone {
		return "", n, st
	}
	return r.String(), n, stringDone
}

// wake pops every stream the last round of insertions unblocked off the
// blocked queue and stops counting it as blocked. It does not decode
// anything: the caller resumes each such stream by calling
// DecodeHeaderBlock again.
func (dec *QpackDecoder) wake() {
	for _, streamID := range dec.blocked.Ready(dec.table.InsertCount()) {
		delete(dec.blockedStreams, streamID)
	}
}

// BlockedStreams reports which streams are still parked awaiting more
// insertions. A stream that an EncStreamIn call unblocked is no longer
// listed; the caller resumes it by calling DecodeHeaderBlock again, with
// no new bytes if none arrived meanwhile.
func (dec *QpackDecoder) BlockedStreams() []uint64 {
	ids := make([]uint64, 0, len(dec.blockedStreams))
	for id := range dec.blockedStreams {
		ids = append(ids, id)
	}
	return ids
}
