package hc

import (
	"crypto/rand"
	"encoding/binary"
)

// encEntry is a dynamic table entry as tracked by the encoder: in addition
// to the (name, value, id) triple it carries a usage count of how many
// currently-unacknowledged header blocks reference it, mirroring the
// teacher's qpackEncoderEntry.usageCount (hc/qpacktable.go). An entry with
// a non-zero usage count cannot be evicted (spec.md §3, §4.4).
type encEntry struct {
	entry
	usageCount int
}

func (e *encEntry) inUse() bool {
	return e.usageCount > 0
}

// encDynamicTable is the encoder's view of the dynamic table: an
// insertion-ordered FIFO plus two hashed indices, one by name and one by
// name+value (spec.md §3, §4.4).
type encDynamicTable struct {
	seed        uint64
	entries     []*encEntry // oldest first
	nextID      AbsoluteIndex
	capacity    TableCapacity
	used        TableCapacity
	byName      *hashIndex
	byNameValue *hashIndex
}

func newEncDynamicTable(capacity TableCapacity) *encDynamicTable {
	return &encDynamicTable{
		seed:        randomSeed(),
		capacity:    capacity,
		byName:      newHashIndex(),
		byNameValue: newHashIndex(),
	}
}

func randomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable; fall back
		// to a fixed seed rather than leaving hashing unseeded, since
		// callers don't expect Insert/Find to return errors.
		return 0x9e3779b97f4a7c15
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// InsertCount is the number of insertions performed so far, i.e. the
// absolute id that would be assigned to the next insertion minus one.
func (t *encDynamicTable) InsertCount() AbsoluteIndex {
	return t.nextID
}

func (t *encDynamicTable) Capacity() TableCapacity { return t.capacity }
func (t *encDynamicTable) Used() TableCapacity     { return t.used }

// FindNameValue returns an exact (name, value) match, or nil.
func (t *encDynamicTable) FindNameValue(name, value string) *encEntry {
	h := nameValueHash(t.seed, name, value)
	return t.byNameValue.find(h, func(e *encEntry) bool {
		return e.name == name && e.value == value
	})
}

// FindName returns the newest entry with a matching name, or nil.
func (t *encDynamicTable) FindName(name string) *encEntry {
	h := nameHash(t.seed, name)
	var best *encEntry
	for _, slot := range t.byName.buckets[t.byName.bucketFor(h)] {
		if slot.hash == h && slot.e.name == name {
			if best == nil || slot.e.id > best.id {
				best = slot.e
			}
		}
	}
	return best
}

// evictableSize returns how much space could be reclaimed by evicting the
// oldest entries up to (but not including) one that canEvict rejects.
func (t *encDynamicTable) evictableSize(canEvict func(*encEntry) bool) TableCapacity {
	var sum TableCapacity
	for _, e := range t.entries {
		if !canEvict(e) {
			break
		}
		sum += e.Size()
	}
	return sum
}

// Insert attempts to add (name, value) to the table, evicting the oldest
// entries first. canEvict reports whether a given entry currently has no
// live reference and may be dropped; Insert refuses to evict past the
// first entry canEvict rejects, matching spec.md §4.4's admission rule
// that an insert must never evict a still-referenced entry. It returns
// (nil, false) if the entry cannot be admitted without doing so.
func (t *encDynamicTable) Insert(name, value string, canEvict func(*encEntry) bool) (*encEntry, bool) {
	e := &encEntry{entry: entry{name: name, value: value}}
	size := e.Size()
	if size > t.capacity {
		return nil, false
	}
	if t.used+size > t.capacity {
		if t.used+size-t.evictableSize(canEvict) > t.capacity {
			return nil, false
		}
		t.evictTo(t.capacity - size)
	}
	t.nextID++
	e.id = t.nextID
	t.entries = append(t.entries, e)
	t.used += size
	t.byName.insert(nameHash(t.seed, name), e)
	t.byNameValue.insert(nameValueHash(t.seed, name, value), e)
	return e, true
}

// evictTo drops oldest entries until used <= target. Callers must already
// have verified (via evictableSize) that doing so is admissible.
func (t *encDynamicTable) evictTo(target TableCapacity) {
	i := 0
	for i < len(t.entries) && t.used > target {
		e := t.entries[i]
		t.used -= e.Size()
		t.byName.remove(nameHash(t.seed, e.name), e)
		t.byNameValue.remove(nameValueHash(t.seed, e.name, e.value), e)
		i++
	}
	t.entries = t.entries[i:]
}

// SetCapacity changes the configured capacity, evicting entries if the new
// capacity is smaller. canEvict is applied exactly as in Insert; a caller
// asking to shrink below what unreferenced entries allow gets a partial
// reduction bounded by what is actually evictable.
func (t *encDynamicTable) SetCapacity(capacity TableCapacity, canEvict func(*encEntry) bool) {
	t.capacity = capacity
	if t.used <= capacity {
		return
	}
	avail := t.used - t.evictableSize(canEvict)
	target := capacity
	if avail > target {
		target = avail
	}
	t.evictTo(target)
}
