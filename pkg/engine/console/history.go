package console

// DefaultHistorySize is the history ring capacity used when no override is
// configured.
const DefaultHistorySize = 64

// History is a bounded ring of previously submitted commands with a separate
// cursor for directional recall. A cursor equal to Len() means "not currently
// recalling" (fresh line).
type History struct {
	entries  []string
	capacity int
	maxEntry int
	cursor   int
}

// NewHistory creates a history ring holding at most capacity entries, each
// truncated to maxEntry bytes on insertion. Values below 1 fall back to
// DefaultHistorySize and DefaultInputCapacity respectively.
func NewHistory(capacity, maxEntry int) *History {
	if capacity < 1 {
		capacity = DefaultHistorySize
	}
	if maxEntry < 1 {
		maxEntry = DefaultInputCapacity
	}
	return &History{capacity: capacity, maxEntry: maxEntry}
}

// Add appends a submitted command, evicting the oldest entry when the ring is
// full, and resets the recall cursor to the fresh-line position. Oversized
// commands are truncated rather than rejected.
func (h *History) Add(command string) {
	if len(command) > h.maxEntry {
		command = truncateToRuneBoundary(command, h.maxEntry)
	}
	if len(h.entries) >= h.capacity {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.entries = append(h.entries, command)
	h.cursor = len(h.entries)
}

// RecallPrevious moves the cursor one entry toward the oldest command and
// returns it. At the oldest entry it is a no-op and reports false.
func (h *History) RecallPrevious() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// RecallNext moves the cursor one entry toward the newest command. Stepping
// past the newest entry returns fresh=true: the caller should clear the edit
// line instead of loading an entry.
func (h *History) RecallNext() (entry string, ok bool, fresh bool) {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true, false
	}
	h.cursor = len(h.entries)
	return "", false, true
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current recall position, in [0, Len()].
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of the retained entries, oldest first.
func (h *History) Entries() []string {
	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}
