package menu

// history is a bounded in-memory record of prompt inputs, newest last.
// Nothing is persisted; the record lives for the session only.
type history struct {
	entries []string
	limit   int
	// cursor is the recall position; len(entries) means "not
	// recalling", i.e. the live input line.
	cursor int
}

func newHistory(limit int) *history {
	return &history{limit: limit, cursor: 0}
}

// Add appends an entry, evicting the oldest past the limit, and resets
// the recall cursor. Empty entries and immediate duplicates are skipped.
func (h *history) Add(entry string) {
	defer func() { h.cursor = len(h.entries) }()
	if entry == "" || h.limit == 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Prev moves one step back in time and reports the entry there.
func (h *history) Prev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves one step forward; past the newest entry it reports
// ok=false, meaning the live input line should be restored.
func (h *history) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return "", false
	}
	return h.entries[h.cursor], true
}

// Reset returns the cursor to the live input line.
func (h *history) Reset() {
	h.cursor = len(h.entries)
}
