package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stardrift/pkg/engine/console"
)

// Console overlay palette.
var (
	colourOverlay     = color.RGBA{10, 12, 24, 200}   // translucent console background
	colourInputStrip  = color.RGBA{16, 18, 34, 236}   // more opaque input area
	colourBorderLight = color.RGBA{110, 115, 160, 255}
	colourBorderDark  = color.RGBA{48, 50, 78, 255}
	colourCaret       = color.RGBA{235, 240, 255, 255}
	colourInput       = color.RGBA{255, 255, 255, 255}

	// Scrollback text colours by tag.
	tagColours = map[console.Colour]color.RGBA{
		console.ColourDefault: {200, 210, 245, 255},
		console.ColourBlack:   {20, 20, 24, 255},
		console.ColourWhite:   {255, 255, 255, 255},
		console.ColourRed:     {255, 100, 100, 255},
		console.ColourGreen:   {100, 255, 150, 255},
		console.ColourYellow:  {255, 220, 100, 255},
		console.ColourBlue:    {100, 150, 255, 255},
		console.ColourMuted:   {120, 130, 180, 255},
	}
)

const (
	edgePadding = 4
	caretWidth  = 6
)

// Renderer draws the console overlay. It reads only the frame snapshot it is
// handed; drawing never mutates console state.
type Renderer struct {
	fonts *Fonts
}

// NewRenderer creates a renderer drawing with the given fonts.
func NewRenderer(fonts *Fonts) *Renderer {
	return &Renderer{fonts: fonts}
}

// Draw composites one console frame onto the screen: translucent background,
// opaque input strip, visible scrollback lines, the line being typed, the
// blinking caret and the border separators.
func (r *Renderer) Draw(screen *ebiten.Image, f console.Frame) {
	if !f.Open || f.LineHeight == 0 {
		return
	}

	left := float32(f.Region.Min.X)
	top := float32(f.Region.Min.Y)
	width := float32(f.Region.Dx())
	height := float32(f.Region.Dy())
	bottom := f.Region.Max.Y
	lineHeight := f.LineHeight

	// Translucent backdrop for the whole region, then a more opaque strip
	// for the input area.
	vector.DrawFilledRect(screen, left, top, width, height, colourOverlay, false)
	stripTop := bottom - lineHeight - 10
	vector.DrawFilledRect(screen, left, float32(stripTop), width, float32(bottom-1-stripTop), colourInputStrip, false)

	// Visible scrollback lines, top-down.
	face := r.fonts.Face()
	y := f.Region.Min.Y + edgePadding
	for _, line := range f.Lines {
		r.drawString(screen, line.Text, f.Region.Min.X+edgePadding, y, tagColours[line.Colour], face)
		y += lineHeight
	}

	// The line being typed sits at the bottom of the input strip.
	inputY := bottom - lineHeight - edgePadding - 1
	r.drawString(screen, f.Input, f.Region.Min.X+edgePadding, inputY, colourInput, face)

	// Caret: an underline bar, solid half of the blink cycle.
	if f.CaretVisible {
		caretX := float32(f.Region.Min.X + edgePadding + f.CaretX)
		vector.DrawFilledRect(screen, caretX, float32(inputY+lineHeight), caretWidth, 1, colourCaret, false)
	}

	// Input strip top border and console bottom border, light over dark.
	r.hline(screen, left, width, bottom-lineHeight-11, colourBorderLight)
	r.hline(screen, left, width, bottom-lineHeight-10, colourBorderDark)
	r.hline(screen, left, width, bottom-2, colourBorderLight)
	r.hline(screen, left, width, bottom-1, colourBorderDark)
}

func (r *Renderer) drawString(screen *ebiten.Image, s string, x, y int, col color.RGBA, face *text.GoTextFace) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

func (r *Renderer) hline(screen *ebiten.Image, left, width float32, y int, col color.RGBA) {
	vector.DrawFilledRect(screen, left, float32(y), width, 1, col, false)
}
