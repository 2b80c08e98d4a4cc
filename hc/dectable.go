package hc

// decEntry is a dynamic table entry as tracked by the decoder. refcount
// counts header sets that still hold a reference to it; once the entry
// has been evicted for size and its refcount drops to zero it is dropped
// for good (spec.md §3, §4.5, and the "refcount-managed decoder entries"
// design note in §9).
type decEntry struct {
	entry
	refcount int
	evicted  bool
}

// decDynamicTable is the decoder's view of the dynamic table: entries are
// addressed either by absolute id or by an offset relative to some base,
// and remain reachable by id via byID for as long as a live header set
// references them, even after they fall out of the capacity window.
type decDynamicTable struct {
	byID          map[AbsoluteIndex]*decEntry
	order         []AbsoluteIndex // ids still counted toward used capacity, oldest first
	insertCount   AbsoluteIndex
	deletionCount AbsoluteIndex
	capacity      TableCapacity
	used          TableCapacity
}

func newDecDynamicTable(capacity TableCapacity) *decDynamicTable {
	return &decDynamicTable{
		byID:     make(map[AbsoluteIndex]*decEntry),
		capacity: capacity,
	}
}

// InsertCount is the number of entries pushed so far; this is what
// instructions and header-block prefixes call "insert count" (spec.md
// §4.7, §6).
func (t *decDynamicTable) InsertCount() AbsoluteIndex { return t.insertCount }

func (t *decDynamicTable) Capacity() TableCapacity { return t.capacity }
func (t *decDynamicTable) Used() TableCapacity     { return t.used }

// Push appends a new entry, evicting oldest entries as needed to respect
// capacity. It never fails: an oversized entry simply flushes the table,
// matching the teacher's Table.Insert behavior (hc/table.go).
func (t *decDynamicTable) Push(name, value string) *decEntry {
	t.insertCount++
	e := &decEntry{entry: entry{name: name, value: value, id: t.insertCount}}
	t.byID[e.id] = e
	t.order = append(t.order, e.id)
	t.used += e.Size()
	t.evict()
	return e
}

// Duplicate pushes a copy of an existing entry under a new absolute id, as
// issued by the encoder-stream "duplicate" instruction (spec.md §4.7).
func (t *decDynamicTable) Duplicate(src *decEntry) *decEntry {
	return t.Push(src.name, src.value)
}

func (t *decDynamicTable) evict() {
	for len(t.order) > 0 && t.used > t.capacity {
		id := t.order[0]
		t.order = t.order[1:]
		e := t.byID[id]
		t.used -= e.Size()
		t.deletionCount++
		t.dropOldest(e)
	}
}

func (t *decDynamicTable) dropOldest(e *decEntry) {
	if e.refcount <= 0 {
		delete(t.byID, e.id)
		return
	}
	e.evicted = true
}

// Acquire records that a header set now holds a reference to e, keeping it
// alive past logical eviction until Release is called (spec.md invariant
// 3: "Decoder refcount > 0 => entry remains in table until refcount
// reaches 0 after eviction logically occurred").
func (t *decDynamicTable) Acquire(e *decEntry) { e.refcount++ }

// Release drops a reference acquired via Acquire, freeing the entry if it
// was already logically evicted and this was the last reference.
func (t *decDynamicTable) Release(e *decEntry) {
	e.refcount--
	if e.refcount <= 0 && e.evicted {
		delete(t.byID, e.id)
	}
}

// LookupAbsolute returns the entry with the given absolute id, or nil if
// it was never inserted or has already been fully freed.
func (t *decDynamicTable) LookupAbsolute(id AbsoluteIndex) *decEntry {
	return t.byID[id]
}

// LookupRelative returns the entry offset positions behind base, where
// offset 0 is base itself. Per spec.md §3, offset relates to an absolute
// id as offset = abs_id - deletion_count - 1; here we invert that by
// computing the id directly from base and offset.
func (t *decDynamicTable) LookupRelative(base AbsoluteIndex, offset uint64) *decEntry {
	if AbsoluteIndex(offset) >= base {
		return nil
	}
	return t.byID[base-AbsoluteIndex(offset)]
}

// SetCapacity changes the configured capacity, evicting as needed. The
// caller (the encoder-stream parser) is responsible for enforcing that the
// new value does not exceed the connection's negotiated ceiling.
func (t *decDynamicTable) SetCapacity(capacity TableCapacity) {
	t.capacity = capacity
	t.evict()
}
