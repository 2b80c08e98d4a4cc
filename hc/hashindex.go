package hc

import "github.com/cespare/xxhash/v2"

// hashIndex is a power-of-two bucket array with chaining, used by the
// encoder's dynamic table to find entries by name and by name+value in
// roughly constant time (spec.md §3, §4.4). The bucket count doubles
// whenever occupancy reaches half the bucket count; because the hash of
// an entry never changes, growing is a partition by one additional bit of
// the hash rather than a full rehash from scratch (spec.md §9).
type hashIndex struct {
	buckets [][]hashSlot
	count   int
}

type hashSlot struct {
	hash uint64
	e    *encEntry
}

const hashIndexInitialBuckets = 16

func newHashIndex() *hashIndex {
	return &hashIndex{buckets: make([][]hashSlot, hashIndexInitialBuckets)}
}

func (h *hashIndex) bucketFor(hash uint64) int {
	return int(hash & uint64(len(h.buckets)-1))
}

func (h *hashIndex) insert(hash uint64, e *encEntry) {
	b := h.bucketFor(hash)
	h.buckets[b] = append(h.buckets[b], hashSlot{hash, e})
	h.count++
	if h.count*2 >= len(h.buckets) {
		h.grow()
	}
}

func (h *hashIndex) grow() {
	old := h.buckets
	h.buckets = make([][]hashSlot, len(old)*2)
	for _, chain := range old {
		for _, slot := range chain {
			b := h.bucketFor(slot.hash)
			h.buckets[b] = append(h.buckets[b], slot)
		}
	}
}

// remove drops the first slot whose entry pointer matches e. Buckets never
// shrink: the cost of an oversized bucket array is small compared to the
// complexity of a shrink policy, and QPACK dynamic tables are bounded in
// size already.
func (h *hashIndex) remove(hash uint64, e *encEntry) {
	b := h.bucketFor(hash)
	chain := h.buckets[b]
	for i, slot := range chain {
		if slot.e == e {
			h.buckets[b] = append(chain[:i], chain[i+1:]...)
			h.count--
			return
		}
	}
}

// find calls match for every entry chained under hash, returning the first
// one for which match returns true.
func (h *hashIndex) find(hash uint64, match func(*encEntry) bool) *encEntry {
	for _, slot := range h.buckets[h.bucketFor(hash)] {
		if slot.hash == hash && match(slot.e) {
			return slot.e
		}
	}
	return nil
}

// nameHash and nameValueHash compute the two index keys for an entry. Both
// are salted with the table's per-instance seed so that an adversary who
// can choose header names cannot predict bucket collisions (spec.md §3,
// §9: "seeded per encoder instance... any per-instance seed with >= 32
// random bits is conformant").
func nameHash(seed uint64, name string) uint64 {
	var buf [8]byte
	putSeed(buf[:], seed)
	h := xxhash.New()
	h.Write(buf[:])
	h.WriteString(name)
	return h.Sum64()
}

func nameValueHash(seed uint64, name, value string) uint64 {
	var buf [8]byte
	putSeed(buf[:], seed)
	h := xxhash.New()
	h.Write(buf[:])
	h.WriteString(name)
	h.Write([]byte{0})
	h.WriteString(value)
	return h.Sum64()
}

func putSeed(buf []byte, seed uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(seed >> (8 * uint(i)))
	}
}
