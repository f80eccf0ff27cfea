package console

import (
	"image"
	"math/rand"
	"testing"
)

func sizedViewport(height, lineHeight int) *Viewport {
	v := NewViewport(fixedMetrics{charWidth: 8, lineHeight: lineHeight}, 0, 0)
	v.SetRegion(image.Point{}, image.Point{X: 640, Y: height})
	return v
}

func TestViewportVisibleLineCount(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		lineHeight int
		want       int
	}{
		// floor((322 - 2*10 - 4) / 10) = 29
		{"default console height", 322, 10, 29},
		{"unsized console", 0, 10, 0},
		{"too small for any line", 20, 10, 0},
		{"taller line height", 322, 16, 17},
	}

	for _, tc := range tests {
		v := sizedViewport(tc.height, tc.lineHeight)
		if got := v.VisibleLineCount(); got != tc.want {
			t.Errorf("%s: VisibleLineCount() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestViewportVisibleLineCount_NoMetrics(t *testing.T) {
	v := NewViewport(nil, 0, 0)
	v.SetRegion(image.Point{}, image.Point{X: 640, Y: 322})
	if got := v.VisibleLineCount(); got != 0 {
		t.Errorf("VisibleLineCount() without metrics = %d, want 0", got)
	}
}

func TestViewportScrollToEnd(t *testing.T) {
	v := sizedViewport(322, 10) // 29 visible lines

	v.ScrollToEnd(100)
	if got := v.Scroll(); got != 71 {
		t.Errorf("Scroll() = %d, want 71", got)
	}

	// Fewer lines than fit: pinned to the top.
	v.ScrollToEnd(5)
	if got := v.Scroll(); got != 0 {
		t.Errorf("Scroll() = %d, want 0", got)
	}
}

func TestViewportScrollToEnd_Idempotent(t *testing.T) {
	v := sizedViewport(322, 10)
	v.ScrollToEnd(100)
	once := v.Scroll()
	v.ScrollToEnd(100)
	if v.Scroll() != once {
		t.Errorf("second ScrollToEnd moved the offset: %d -> %d", once, v.Scroll())
	}
}

func TestViewportScrollBy_AlwaysClamped(t *testing.T) {
	v := sizedViewport(322, 10) // 29 visible lines
	const total = 100
	bound := total - 29

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v.ScrollBy(rng.Intn(101)-50, total)
		if s := v.Scroll(); s < 0 || s > bound {
			t.Fatalf("step %d: Scroll() = %d, outside [0, %d]", i, s, bound)
		}
	}
}

func TestViewportScrollBy_ReclampsWhenTotalShrinks(t *testing.T) {
	v := sizedViewport(322, 10)
	v.ScrollToEnd(100)

	// History shrank (e.g. after a clear): a zero-delta adjust snaps the
	// offset back inside the true bound.
	v.ScrollBy(0, 10)
	if got := v.Scroll(); got != 0 {
		t.Errorf("Scroll() = %d, want 0 after total shrank below the view", got)
	}
}

func TestViewportBlinkCycle(t *testing.T) {
	v := NewViewport(nil, 30, 15)

	if !v.CaretVisible() {
		t.Fatal("caret must start solid")
	}
	for i := 0; i < 15; i++ {
		v.Tick()
	}
	if v.CaretVisible() {
		t.Error("caret still visible in the off half of the cycle")
	}
	for i := 0; i < 15; i++ {
		v.Tick()
	}
	if !v.CaretVisible() {
		t.Error("blink phase did not wrap back to solid after a full cycle")
	}
}

func TestViewportRestartBlink(t *testing.T) {
	v := NewViewport(nil, 30, 15)
	for i := 0; i < 20; i++ {
		v.Tick()
	}
	v.RestartBlink()
	if !v.CaretVisible() {
		t.Error("caret must be solid immediately after RestartBlink")
	}
}
