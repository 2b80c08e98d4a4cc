package hc

// staticEntry is one row of the fixed 61-entry table (spec.md §6). Unlike a
// dynamic entry it has no absolute id of its own; its wire index is its
// position in staticTable plus one.
type staticEntry struct {
	name  string
	value string
}

// staticTable is the fixed table, listed in the order the wire format
// indexes it: index 1 is staticTable[0], and so on. The content is the
// HPACK static table of RFC 7541 Appendix A, which QPACK reuses unchanged
// (spec.md §6).
var staticTable = [61]staticEntry{
	{":authority", ""},
	{":method", "GET"},
	{":method", "POST"},
	{":path", "/"},
	{":path", "/index.html"},
	{":scheme", "http"},
	{":scheme", "https"},
	{":status", "200"},
	{":status", "204"},
	{":status", "206"},
	{":status", "304"},
	{":status", "400"},
	{":status", "404"},
	{":status", "500"},
	{"accept-charset", ""},
	{"accept-encoding", "gzip, deflate"},
	{"accept-language", ""},
	{"accept-ranges", ""},
	{"accept", ""},
	{"access-control-allow-origin", ""},
	{"age", ""},
	{"allow", ""},
	{"authorization", ""},
	{"cache-control", ""},
	{"content-disposition", ""},
	{"content-encoding", ""},
	{"content-language", ""},
	{"content-length", ""},
	{"content-location", ""},
	{"content-range", ""},
	{"content-type", ""},
	{"cookie", ""},
	{"date", ""},
	{"etag", ""},
	{"expect", ""},
	{"expires", ""},
	{"from", ""},
	{"host", ""},
	{"if-match", ""},
	{"if-modified-since", ""},
	{"if-none-match", ""},
	{"if-range", ""},
	{"if-unmodified-since", ""},
	{"last-modified", ""},
	{"link", ""},
	{"location", ""},
	{"max-forwards", ""},
	{"proxy-authenticate", ""},
	{"proxy-authorization", ""},
	{"range", ""},
	{"referer", ""},
	{"refresh", ""},
	{"retry-after", ""},
	{"server", ""},
	{"set-cookie", ""},
	{"strict-transport-security", ""},
	{"transfer-encoding", ""},
	{"user-agent", ""},
	{"vary", ""},
	{"via", ""},
	{"www-authenticate", ""},
}

// staticNameFirstByte indexes staticTable by the first byte of the header
// name, narrowing a linear scan to a handful of candidates instead of all
// 61 rows (spec.md §4.3's "decision tree keyed on first byte").
var staticNameFirstByte = func() map[byte][]int {
	m := make(map[byte][]int)
	for i, e := range staticTable {
		if len(e.name) == 0 {
			continue
		}
		b := e.name[0]
		m[b] = append(m[b], i)
	}
	return m
}()

// staticLookup returns (idx+1, valueMatched) for an exact name+value match
// if one exists, else (idx+1, false) for the first name-only match, else
// (0, false) if name does not occur in the static table at all.
func staticLookup(name, value string) (index int, valueMatched bool) {
	if len(name) == 0 {
		return 0, false
	}
	candidates := staticNameFirstByte[name[0]]
	nameMatch := 0
	for _, i := range candidates {
		e := staticTable[i]
		if e.name != name {
			continue
		}
		if e.value == value {
			return i + 1, true
		}
		if nameMatch == 0 {
			nameMatch = i + 1
		}
	}
	return nameMatch, false
}

// staticGet returns the (name, value) at the given 1-based static index, or
// ("", "", false) if idx is out of range.
func staticGet(idx int) (name, value string, ok bool) {
	if idx < 1 || idx > len(staticTable) {
		return "", "", false
	}
	e := staticTable[idx-1]
	return e.name, e.value, true
}
