package console

import "image"

// Defaults for the console region and the caret blink cycle.
const (
	DefaultHeight       = 322
	DefaultBlinkCycle   = 30
	DefaultBlinkOnTicks = 15

	// fixedChrome is the vertical space taken by the input strip separator
	// and padding, on top of the two line heights reserved for the input
	// line itself.
	fixedChrome = 4
)

// Viewport tracks the console region geometry, the scroll offset into the
// scrollback, and the caret blink phase.
type Viewport struct {
	topLeft     image.Point
	bottomRight image.Point

	scroll int

	blinkTicks int
	blinkCycle int
	blinkOn    int

	metrics TextMetrics
}

// NewViewport creates a viewport. blinkCycle and blinkOn below 1 fall back to
// the defaults. metrics may be nil until the host lays the console out.
func NewViewport(metrics TextMetrics, blinkCycle, blinkOn int) *Viewport {
	if blinkCycle < 1 {
		blinkCycle = DefaultBlinkCycle
	}
	if blinkOn < 1 {
		blinkOn = DefaultBlinkOnTicks
	}
	return &Viewport{metrics: metrics, blinkCycle: blinkCycle, blinkOn: blinkOn}
}

// SetRegion sets the console's screen rectangle.
func (v *Viewport) SetRegion(topLeft, bottomRight image.Point) {
	v.topLeft = topLeft
	v.bottomRight = bottomRight
}

// Region returns the console's screen rectangle.
func (v *Viewport) Region() image.Rectangle {
	return image.Rectangle{Min: v.topLeft, Max: v.bottomRight}
}

// Height returns the console height in pixels.
func (v *Viewport) Height() int {
	return v.bottomRight.Y - v.topLeft.Y
}

// VisibleLineCount returns how many scrollback lines fit above the input
// strip. Zero when the console has not been laid out yet.
func (v *Viewport) VisibleLineCount() int {
	if v.metrics == nil {
		return 0
	}
	lineHeight := v.metrics.LineHeight()
	height := v.Height()
	if height == 0 || lineHeight == 0 {
		return 0
	}
	count := (height - 2*lineHeight - fixedChrome) / lineHeight
	if count < 0 {
		count = 0
	}
	return count
}

// Scroll returns the index of the first visible scrollback line.
func (v *Viewport) Scroll() int {
	return v.scroll
}

// ScrollToEnd scrolls so the newest of total lines is visible.
func (v *Viewport) ScrollToEnd(total int) {
	visible := v.VisibleLineCount()
	if visible == 0 {
		v.scroll = 0
		return
	}
	v.scroll = max(0, total-visible)
}

// ScrollBy adjusts the scroll offset by delta lines, positive toward older
// lines. This is the sole clamp point for scroll state: the offset always
// lands in [0, max(0, total-visible)], even as total shrinks.
func (v *Viewport) ScrollBy(delta, total int) {
	bound := max(0, total-v.VisibleLineCount())
	v.scroll = min(max(v.scroll-delta, 0), bound)
}

// Tick advances the caret blink phase by one frame. Called exactly once per
// logical frame, never from a draw.
func (v *Viewport) Tick() {
	v.blinkTicks = (v.blinkTicks + 1) % v.blinkCycle
}

// CaretVisible reports whether the blink phase is in the "on" half of the
// cycle.
func (v *Viewport) CaretVisible() bool {
	return v.blinkTicks < v.blinkOn
}

// RestartBlink resets the blink phase so the caret is solid, used after any
// caret interaction.
func (v *Viewport) RestartBlink() {
	v.blinkTicks = 0
}
