package console

import "strings"

// DefaultMaxLines is the scrollback cap used when no override is configured.
const DefaultMaxLines = 300

// Scrollback is a bounded, append-only sequence of display lines. Once the cap
// is reached the oldest lines are dropped from the front.
type Scrollback struct {
	lines    []Line
	maxLines int
}

// NewScrollback creates a scrollback capped at maxLines.
// Values below 1 fall back to DefaultMaxLines.
func NewScrollback(maxLines int) *Scrollback {
	if maxLines < 1 {
		maxLines = DefaultMaxLines
	}
	return &Scrollback{maxLines: maxLines}
}

// Write splits text on newlines and appends one line per segment, each
// carrying the given colour tag. Writing is total: there are no error
// conditions, overflow is resolved by evicting the oldest lines.
// Returns the number of lines appended.
func (s *Scrollback) Write(text string, colour Colour) int {
	segments := strings.Split(text, "\n")
	for _, segment := range segments {
		s.lines = append(s.lines, Line{Text: segment, Colour: colour})
	}

	if len(s.lines) > s.maxLines {
		evict := len(s.lines) - s.maxLines
		s.lines = append(s.lines[:0], s.lines[evict:]...)
	}

	return len(segments)
}

// AppendToLast appends text to the most recent line. Used to echo an executed
// command onto the prompt line. No-op when the scrollback is empty.
func (s *Scrollback) AppendToLast(text string) {
	if len(s.lines) == 0 {
		return
	}
	s.lines[len(s.lines)-1].Text += text
}

// Len returns the number of retained lines.
func (s *Scrollback) Len() int {
	return len(s.lines)
}

// At returns the line at index i, oldest first.
func (s *Scrollback) At(i int) Line {
	return s.lines[i]
}

// Window returns a copy of the lines in [from, from+count), clamped to the
// retained range.
func (s *Scrollback) Window(from, count int) []Line {
	if from < 0 {
		from = 0
	}
	if from >= len(s.lines) || count <= 0 {
		return nil
	}
	end := from + count
	if end > len(s.lines) {
		end = len(s.lines)
	}
	window := make([]Line, end-from)
	copy(window, s.lines[from:end])
	return window
}

// Clear discards all retained lines.
func (s *Scrollback) Clear() {
	s.lines = s.lines[:0]
}
