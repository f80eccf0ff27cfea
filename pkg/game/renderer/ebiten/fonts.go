// Package ebiten renders the console overlay and the demo scene with the
// Ebiten 2D engine, and feeds raw keyboard input into the console core.
package ebiten

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// Fonts owns the monospace face used for all console text and implements the
// console's text-metrics collaborator on top of it.
type Fonts struct {
	source *text.GoTextFaceSource
	size   float64

	cachedFace *text.GoTextFace
	lineHeight int
}

// NewFonts parses the embedded Go Mono face at the given point size.
func NewFonts(size float64) (*Fonts, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, err
	}
	return &Fonts{source: source, size: size}, nil
}

// Face returns the cached console font face.
func (f *Fonts) Face() *text.GoTextFace {
	if f.cachedFace == nil {
		f.cachedFace = &text.GoTextFace{
			Source: f.source,
			Size:   f.size,
		}
	}
	return f.cachedFace
}

// StringWidth returns the rendered width of s in pixels.
func (f *Fonts) StringWidth(s string) int {
	if s == "" {
		return 0
	}
	w, _ := text.Measure(s, f.Face(), 0)
	return int(math.Ceil(w))
}

// LineHeight returns the line height in pixels, with a little leading so
// adjacent scrollback lines do not touch.
func (f *Fonts) LineHeight() int {
	if f.lineHeight == 0 {
		_, h := text.Measure("Ag", f.Face(), 0)
		f.lineHeight = int(math.Ceil(h)) + 2
	}
	return f.lineHeight
}
