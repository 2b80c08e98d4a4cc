package hc

import (
	"io"
	"log"
)

// HeaderField is a single name/value pair, with the sensitivity flag that
// controls whether it is permitted to be indexed.
type HeaderField struct {
	Name  string
	Value string
	// Sensitive headers are always emitted as a literal that is flagged
	// "never index", so that intermediaries reproduce them verbatim
	// rather than placing them in a compression table.
	Sensitive bool
}

func (hf HeaderField) String() string {
	return hf.Name + ": " + hf.Value
}

func (hf HeaderField) size() TableCapacity {
	return tableOverhead + TableCapacity(len(hf.Name)+len(hf.Value))
}

// validatePseudoHeaders checks that pseudo-header fields (those whose name
// starts with ':') all precede the regular header fields.
func validatePseudoHeaders(headers []HeaderField) error {
	seenRegular := false
	for _, h := range headers {
		if len(h.Name) > 0 && h.Name[0] == ':' {
			if seenRegular {
				return ErrPseudoHeaderOrder
			}
		} else {
			seenRegular = true
		}
	}
	return nil
}

// logged is embedded by both codec halves to provide an optional
// diagnostic logger, discarding output until one is set.
type logged struct {
	logger *log.Logger
}

func (lg *logged) initLogging() {
	lg.logger = log.New(io.Discard, "", log.Lmicroseconds|log.Lshortfile)
}

// SetLogger installs a logger for diagnostic output. Passing nil restores
// the default (discarding) logger.
func (lg *logged) SetLogger(logger *log.Logger) {
	if logger == nil {
		lg.initLogging()
		return
	}
	lg.logger = logger
}

// dontIndexByDefault lists header names that are rarely worth indexing
// because their values are typically unique per message.
var dontIndexByDefault = map[string]bool{
	":path":               true,
	"content-length":       true,
	"content-range":        true,
	"date":                 true,
	"expires":              true,
	"etag":                 true,
	"if-modified-since":    true,
	"if-range":             true,
	"if-unmodified-since":  true,
	"last-modified":        true,
	"link":                 true,
	"range":                true,
	"referer":              true,
	"refresh":              true,
}

// indexPreferences tracks a per-name override of the default indexing
// policy above, shared by the encoder.
type indexPreferences struct {
	prefs map[string]bool
}

// SetIndexPreference overrides whether fields with the given name are
// considered for indexing. Set to false to always force a literal.
func (ip *indexPreferences) SetIndexPreference(name string, pref bool) {
	if ip.prefs == nil {
		ip.prefs = make(map[string]bool)
	}
	ip.prefs[name] = pref
}

// ClearIndexPreference removes any override set by SetIndexPreference.
func (ip *indexPreferences) ClearIndexPreference(name string) {
	delete(ip.prefs, name)
}

func (ip *indexPreferences) shouldIndex(h HeaderField, capacity TableCapacity) bool {
	if h.Sensitive {
		return false
	}
	if h.size() > capacity {
		return false
	}
	if pref, ok := ip.prefs[h.Name]; ok {
		return pref
	}
	return !dontIndexByDefault[h.Name]
}
