package hc

import (
	"testing"

	"github.com/stvp/assert"
)

func TestEncTableInsertAndFind(t *testing.T) {
	tbl := newEncDynamicTable(4096)
	canEvict := func(e *encEntry) bool { return true }

	e, ok := tbl.Insert("x-foo", "bar", canEvict)
	assert.True(t, ok)
	assert.Equal(t, AbsoluteIndex(1), e.id)

	got := tbl.FindNameValue("x-foo", "bar")
	assert.Equal(t, e, got)

	gotName := tbl.FindName("x-foo")
	assert.Equal(t, e, gotName)

	assert.Nil(t, tbl.FindNameValue("x-foo", "other"))
	assert.Nil(t, tbl.FindName("nope"))
}

func TestEncTableEvictsOldestFirst(t *testing.T) {
	// 32 + len(name)+len(value) per entry; "n1"/"v1" = 36 bytes each.
	tbl := newEncDynamicTable(76) // room for 2 entries, not 3
	canEvict := func(e *encEntry) bool { return true }

	e1, ok := tbl.Insert("n1", "v1", canEvict)
	assert.True(t, ok)
	_, ok = tbl.Insert("n2", "v2", canEvict)
	assert.True(t, ok)
	_, ok = tbl.Insert("n3", "v3", canEvict)
	assert.True(t, ok)

	assert.Nil(t, tbl.FindNameValue("n1", "v1"))
	assert.True(t, tbl.used <= tbl.capacity)
	_ = e1
}

func TestEncTableRefusesToEvictReferencedEntry(t *testing.T) {
	tbl := newEncDynamicTable(40) // room for exactly one 36-byte entry
	e1, ok := tbl.Insert("n1", "v1", func(e *encEntry) bool { return true })
	assert.True(t, ok)
	e1.usageCount = 1 // simulate a live reference

	canEvict := func(e *encEntry) bool { return !e.inUse() }
	_, ok = tbl.Insert("n2", "v2", canEvict)
	assert.False(t, ok)
	assert.Equal(t, TableCapacity(36), tbl.used)
}

func TestEncTableBucketGrowth(t *testing.T) {
	tbl := newEncDynamicTable(1 << 20)
	canEvict := func(e *encEntry) bool { return true }
	for i := 0; i < 64; i++ {
		name := string(rune('a' + i%26))
		_, ok := tbl.Insert(name, "v", canEvict)
		assert.True(t, ok)
	}
	assert.True(t, len(tbl.byName.buckets) > hashIndexInitialBuckets)
}

func TestDecTableRelativeAndAbsoluteLookup(t *testing.T) {
	tbl := newDecDynamicTable(4096)
	e1 := tbl.Push("n1", "v1")
	e2 := tbl.Push("n2", "v2")

	assert.Equal(t, e2, tbl.LookupRelative(e2.id, 0))
	assert.Equal(t, e1, tbl.LookupRelative(e2.id, 1))
	assert.Equal(t, e1, tbl.LookupAbsolute(e1.id))
	assert.Nil(t, tbl.LookupAbsolute(99))
}

func TestDecTableRefcountKeepsEvictedEntryAlive(t *testing.T) {
	tbl := newDecDynamicTable(76) // room for 2 entries
	e1 := tbl.Push("n1", "v1")
	tbl.Acquire(e1)

	tbl.Push("n2", "v2")
	tbl.Push("n3", "v3") // evicts e1 for size, but refcount keeps it alive

	assert.Equal(t, e1, tbl.LookupAbsolute(e1.id))
	tbl.Release(e1)
	assert.Nil(t, tbl.LookupAbsolute(e1.id))
}

func TestDecTableDuplicate(t *testing.T) {
	tbl := newDecDynamicTable(4096)
	e1 := tbl.Push("n1", "v1")
	dup := tbl.Duplicate(e1)
	assert.Equal(t, e1.name, dup.name)
	assert.Equal(t, e1.value, dup.value)
	assert.True(t, dup.id > e1.id)
}

func TestDecTableSetCapacityEvicts(t *testing.T) {
	tbl := newDecDynamicTable(4096)
	tbl.Push("n1", "v1")
	tbl.Push("n2", "v2")
	tbl.SetCapacity(36) // room for exactly one entry
	assert.Nil(t, tbl.LookupAbsolute(1))
	assert.True(t, tbl.LookupAbsolute(2) != nil)
}

func TestStaticLookupAndGet(t *testing.T) {
	idx, matched := staticLookup(":path", "/")
	assert.True(t, matched)
	name, value, ok := staticGet(idx)
	assert.True(t, ok)
	assert.Equal(t, ":path", name)
	assert.Equal(t, "/", value)

	idx, matched = staticLookup(":path", "/something")
	assert.False(t, matched)
	assert.True(t, idx > 0)

	idx, matched = staticLookup("x-not-there", "v")
	assert.Equal(t, 0, idx)
	assert.False(t, matched)

	_, _, ok = staticGet(0)
	assert.False(t, ok)
	_, _, ok = staticGet(62)
	assert.False(t, ok)
}

func TestBlockedQueueOrdersByRequiredInsertCount(t *testing.T) {
	var q blockedQueue
	q.Block(3, 30)
	q.Block(1, 10)
	q.Block(2, 20)

	assert.Equal(t, 0, len(q.Ready(5)))
	ready := q.Ready(20)
	assert.Equal(t, 2, len(ready))
	assert.Equal(t, uint64(1), ready[0])
	assert.Equal(t, uint64(2), ready[1])
	assert.Equal(t, 1, q.Len())
	ready = q.Ready(100)
	assert.Equal(t, 1, len(ready))
	assert.Equal(t, uint64(3), ready[0])
}
