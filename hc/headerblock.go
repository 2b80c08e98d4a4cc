package hc

// headerBlockUsage tracks, for one header block the encoder has emitted,
// which dynamic entries it referenced and the largest absolute id among
// them. It lives until the decoder acknowledges the block, at which point
// every entry's usage count is released (spec.md §3 "header info", §4.6
// risk accounting; grounded in the teacher's qpackHeaderBlockUsage,
// hc/qpacktable.go).
type headerBlockUsage struct {
	streamID uint64
	seqno    uint64
	entries  []*encEntry
	maxID    AbsoluteIndex
	atRisk   bool
}

func (u *headerBlockUsage) reference(e *encEntry) {
	u.entries = append(u.entries, e)
	e.usageCount++
	if e.id > u.maxID {
		u.maxID = e.id
	}
}

func (u *headerBlockUsage) release() {
	for _, e := range u.entries {
		e.usageCount--
	}
	u.entries = nil
}

// HeaderBlockContext is an in-progress header block opened by StartHeader
// and closed by EndHeader. It accumulates the usage and risk state that
// the block's prefix needs once every header has been encoded.
type HeaderBlockContext struct {
	usage *headerBlockUsage
	base  AbsoluteIndex
}
