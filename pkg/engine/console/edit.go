package console

import (
	"errors"
	"unicode/utf8"
)

// DefaultInputCapacity is the edit buffer capacity in bytes used when no
// override is configured.
const DefaultInputCapacity = 256

// ErrBufferOverflow is returned by SetContent when the supplied content
// exceeds the edit buffer capacity. Normal input paths pre-truncate, so this
// is a defensive invariant check rather than an expected failure.
var ErrBufferOverflow = errors.New("console: edit buffer overflow")

// TextMetrics measures rendered text under the active console font. The caret
// pixel position and the viewport line maths are derived from it.
type TextMetrics interface {
	// StringWidth returns the rendered width of s in pixels.
	StringWidth(s string) int
	// LineHeight returns the line height in pixels.
	LineHeight() int
}

// Edit is the line currently being typed: a bounded byte buffer, a caret byte
// offset, and the derived caret pixel X. The caret always sits on a rune
// boundary after any public operation.
type Edit struct {
	content  string
	capacity int
	caret    int
	caretX   int

	metrics     TextMetrics
	onCaretMove func()
}

// NewEdit creates an edit buffer with the given byte capacity. Values below 1
// fall back to DefaultInputCapacity. metrics may be nil, in which case the
// caret pixel position stays at zero.
func NewEdit(capacity int, metrics TextMetrics) *Edit {
	if capacity < 1 {
		capacity = DefaultInputCapacity
	}
	return &Edit{capacity: capacity, metrics: metrics}
}

// SetCaretHook registers a callback invoked whenever the caret moves, so the
// host can restart the caret blink (the caret must be solid right after any
// interaction).
func (e *Edit) SetCaretHook(fn func()) {
	e.onCaretMove = fn
}

// Content returns the current line under construction.
func (e *Edit) Content() string {
	return e.content
}

// Len returns the content length in bytes.
func (e *Edit) Len() int {
	return len(e.content)
}

// Empty reports whether nothing has been typed.
func (e *Edit) Empty() bool {
	return len(e.content) == 0
}

// Capacity returns the buffer capacity in bytes.
func (e *Edit) Capacity() int {
	return e.capacity
}

// Caret returns the caret byte offset.
func (e *Edit) Caret() int {
	return e.caret
}

// CaretX returns the caret position in pixels, measured from the left edge of
// the input strip.
func (e *Edit) CaretX() int {
	return e.caretX
}

// SetContent replaces the content and moves the caret to the end. Content
// larger than the capacity is rejected with ErrBufferOverflow.
func (e *Edit) SetContent(s string) error {
	if len(s) > e.capacity {
		return ErrBufferOverflow
	}
	e.content = s
	e.moveCaret(len(s))
	return nil
}

// Clear empties the content and resets the caret.
func (e *Edit) Clear() {
	e.content = ""
	e.moveCaret(0)
}

// MoveCaretTo sets the caret offset, clamped to [0, Len()] and snapped back
// to the nearest rune boundary.
func (e *Edit) MoveCaretTo(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(e.content) {
		offset = len(e.content)
	}
	for offset > 0 && offset < len(e.content) && !utf8.RuneStart(e.content[offset]) {
		offset--
	}
	e.moveCaret(offset)
}

// CaretToEnd moves the caret past the last byte of content.
func (e *Edit) CaretToEnd() {
	e.moveCaret(len(e.content))
}

// CaretToStart moves the caret to the first byte of content.
func (e *Edit) CaretToStart() {
	e.moveCaret(0)
}

// CaretLeft moves the caret one rune toward the start.
func (e *Edit) CaretLeft() {
	if e.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.content[:e.caret])
	e.moveCaret(e.caret - size)
}

// CaretRight moves the caret one rune toward the end.
func (e *Edit) CaretRight() {
	if e.caret >= len(e.content) {
		return
	}
	_, size := utf8.DecodeRuneInString(e.content[e.caret:])
	e.moveCaret(e.caret + size)
}

// InsertString inserts s at the caret and advances the caret past it.
// Input that would overflow the capacity is truncated on a rune boundary;
// whatever fits is kept (silent cap, matching the scrollback and history).
func (e *Edit) InsertString(s string) {
	room := e.capacity - len(e.content)
	if room <= 0 {
		return
	}
	if len(s) > room {
		s = truncateToRuneBoundary(s, room)
		if s == "" {
			return
		}
	}
	e.content = e.content[:e.caret] + s + e.content[e.caret:]
	e.moveCaret(e.caret + len(s))
}

// DeleteBackward removes the rune before the caret.
func (e *Edit) DeleteBackward() {
	if e.caret == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.content[:e.caret])
	e.content = e.content[:e.caret-size] + e.content[e.caret:]
	e.moveCaret(e.caret - size)
}

// DeleteForward removes the rune after the caret.
func (e *Edit) DeleteForward() {
	if e.caret >= len(e.content) {
		return
	}
	_, size := utf8.DecodeRuneInString(e.content[e.caret:])
	e.content = e.content[:e.caret] + e.content[e.caret+size:]
	e.moveCaret(e.caret)
}

// moveCaret commits a caret offset, recomputes the caret pixel position from
// the rendered width of the content left of the caret, and fires the caret
// hook.
func (e *Edit) moveCaret(offset int) {
	e.caret = offset
	if e.metrics != nil {
		e.caretX = e.metrics.StringWidth(e.content[:e.caret])
	} else {
		e.caretX = 0
	}
	if e.onCaretMove != nil {
		e.onCaretMove()
	}
}

// truncateToRuneBoundary cuts s to at most max bytes without splitting a rune.
func truncateToRuneBoundary(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
