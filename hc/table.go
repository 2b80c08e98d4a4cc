package hc

// TableCapacity is the unit the static and dynamic tables account space in.
type TableCapacity uint32

// tableOverhead is the per-entry bookkeeping cost added to every dynamic
// entry's name+value length when computing its size (spec.md §3).
const tableOverhead TableCapacity = 32

// AbsoluteIndex is the 62-bit monotone id the encoder assigns to each
// dynamic table insertion, starting at 1 and never reused.
type AbsoluteIndex uint64

// entry is the immutable (name, value, absolute id) triple shared by both
// the encoder- and decoder-side dynamic tables.
type entry struct {
	name  string
	value string
	id    AbsoluteIndex
}

func (e *entry) Size() TableCapacity {
	return tableOverhead + TableCapacity(len(e.name)+len(e.value))
}

func (e *entry) HeaderField() HeaderField {
	return HeaderField{Name: e.name, Value: e.value}
}
