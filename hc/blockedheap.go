package hc

import "container/heap"

// blockedStream is one entry in the decoder's blocked-stream queue: a
// header block that arrived referencing insertions the decoder has not
// yet observed (spec.md §4.7).
type blockedStream struct {
	streamID           uint64
	requiredInsertCount AbsoluteIndex
	index              int // heap.Interface bookkeeping
}

// blockedHeap is a binary min-heap of blockedStream ordered by
// requiredInsertCount, so that advancing the decoder's local insert count
// can cheaply find every stream that is now unblocked (spec.md §4.7,
// "Blocked-stream queue").
type blockedHeap []*blockedStream

func (h blockedHeap) Len() int { return len(h) }
func (h blockedHeap) Less(i, j int) bool {
	return h[i].requiredInsertCount < h[j].requiredInsertCount
}
func (h blockedHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *blockedHeap) Push(x any) {
	bs := x.(*blockedStream)
	bs.index = len(*h)
	*h = append(*h, bs)
}

func (h *blockedHeap) Pop() any {
	old := *h
	n := len(old)
	bs := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return bs
}

// blockedQueue wraps blockedHeap with the operations the decoder core
// actually needs, so callers never touch container/heap directly.
type blockedQueue struct {
	h blockedHeap
}

func (q *blockedQueue) Len() int { return len(q.h) }

// Block enqueues streamID, waiting until the local insert count reaches
// requiredInsertCount.
func (q *blockedQueue) Block(streamID uint64, requiredInsertCount AbsoluteIndex) {
	heap.Push(&q.h, &blockedStream{streamID: streamID, requiredInsertCount: requiredInsertCount})
}

// Ready pops and returns every stream id whose requiredInsertCount is now
// satisfied by insertCount, in ascending order of requiredInsertCount.
func (q *blockedQueue) Ready(insertCount AbsoluteIndex) []uint64 {
	var ready []uint64
	for q.h.Len() > 0 && q.h[0].requiredInsertCount <= insertCount {
		bs := heap.Pop(&q.h).(*blockedStream)
		ready = append(ready, bs.streamID)
	}
	return ready
}
