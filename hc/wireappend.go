package hc

// This file collects the small append* helpers that turn a chosen
// representation into wire bytes, keeping encoder.go focused on the
// selection policy (spec.md §4.6, §6).

func appendIndexedStatic(dst []byte, idx int) []byte {
	return AppendInt(dst, 6, hbIndexedPattern|hbIndexedStatic, uint64(idx))
}

func appendIndexedDynamic(dst []byte, base, id AbsoluteIndex) []byte {
	postBase, val := refLocation(base, id)
	if postBase {
		return AppendInt(dst, 4, hbIndexedPostBasePattern, val)
	}
	return AppendInt(dst, 6, hbIndexedPattern, val)
}

// appendLiteralNameRef writes a literal referencing a static-table name,
// which needs no base-relative adjustment since the static table has no
// insertion order.
func appendLiteralNameRef(dst []byte, static, never bool, idx int, value string) []byte {
	top := byte(hbLiteralNameRefPattern)
	if never {
		top |= hbLiteralNameRefNever
	}
	if static {
		top |= hbLiteralNameRefStatic
	}
	dst = AppendInt(dst, 4, top, uint64(idx))
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

// appendLiteralNameRefDynamic writes a literal referencing a dynamic-table
// name, choosing the base-relative or post-base form as needed.
func appendLiteralNameRefDynamic(base AbsoluteIndex, never bool, id AbsoluteIndex, value string) []byte {
	postBase, val := refLocation(base, id)
	var dst []byte
	if postBase {
		top := byte(hbLiteralPostBasePattern)
		if never {
			top |= hbLiteralPostBaseNever
		}
		dst = AppendInt(dst, 3, top, val)
	} else {
		top := byte(hbLiteralNameRefPattern)
		if never {
			top |= hbLiteralNameRefNever
		}
		dst = AppendInt(dst, 4, top, val)
	}
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

func appendLiteral(dst []byte, never bool, name, value string) []byte {
	top := byte(hbLiteralNoNamePattern)
	if never {
		top |= hbLiteralNoNameNever
	}
	dst = appendString(dst, top, 3, hbLiteralNoNameHuffman, name)
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

func appendInsertNameRefStatic(dst []byte, staticIdx int, value string) []byte {
	dst = AppendInt(dst, 6, esInsertNameRefPattern|esInsertNameRefStatic, uint64(staticIdx))
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

// appendInsertNameRefDynamic references an existing entry's name by its
// offset relative to the current insert count (0 = most recently
// inserted), the convention the encoder stream uses since it has no
// per-block base (spec.md §4.7).
func appendInsertNameRefDynamic(dst []byte, insertCount, nameEntryID AbsoluteIndex, value string) []byte {
	offset := uint64(insertCount - nameEntryID)
	dst = AppendInt(dst, 6, esInsertNameRefPattern, offset)
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

func appendInsertLiteral(dst []byte, name, value string) []byte {
	dst = appendString(dst, esInsertNoNamePattern, 5, esInsertNoNameHuffman, name)
	return appendString(dst, 0, 7, valueHuffmanBit, value)
}

func appendDuplicate(dst []byte, insertCount, id AbsoluteIndex) []byte {
	offset := uint64(insertCount - id)
	return AppendInt(dst, 5, esDuplicatePattern, offset)
}

func appendSetCapacity(dst []byte, capacity TableCapacity) []byte {
	return AppendInt(dst, 5, esSetCapacityPattern, uint64(capacity))
}

// appendBlockPrefix writes the two-part header-block prefix: the required
// insert count, then a signed delta from base to it (spec.md §6).
func appendBlockPrefix(dst []byte, requiredInsertCount, base AbsoluteIndex) []byte {
	dst = AppendInt(dst, 8, 0, uint64(requiredInsertCount))
	var sign byte
	var delta uint64
	if base >= requiredInsertCount {
		delta = uint64(base - requiredInsertCount)
	} else {
		sign = 0x80
		delta = uint64(requiredInsertCount - base)
	}
	return AppendInt(dst, 7, sign, delta)
}

func appendHeaderAck(dst []byte, streamID uint64) []byte {
	return AppendInt(dst, 7, dsHeaderAckPattern, streamID)
}

func appendTableSync(dst []byte, n uint64) []byte {
	return AppendInt(dst, 6, dsTableSyncPattern, n)
}

func appendStreamCancel(dst []byte, streamID uint64) []byte {
	return AppendInt(dst, 6, dsStreamCancelPattern, streamID)
}
