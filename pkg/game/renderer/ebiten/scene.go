package ebiten

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	starCount = 420
	fieldSize = 4096
)

type star struct {
	x, y   int
	radius float32
	shade  uint8
}

// Scene is the pannable starfield behind the console. The field is drawn into
// an offscreen buffer and only redrawn when something invalidates it, so an
// idle frame is a single image copy.
type Scene struct {
	stars  []star
	pan    image.Point
	buffer *ebiten.Image
	dirty  bool
}

// NewScene seeds a starfield from the given source.
func NewScene(rng *rand.Rand) *Scene {
	s := &Scene{
		stars: make([]star, starCount),
		dirty: true,
	}
	for i := range s.stars {
		s.stars[i] = star{
			x:      rng.Intn(fieldSize),
			y:      rng.Intn(fieldSize),
			radius: 0.5 + rng.Float32()*1.5,
			shade:  uint8(90 + rng.Intn(166)),
		}
	}
	return s
}

// Pan shifts the viewport over the field. The field wraps, so panning never
// runs off an edge.
func (s *Scene) Pan(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	s.pan.X = ((s.pan.X+dx)%fieldSize + fieldSize) % fieldSize
	s.pan.Y = ((s.pan.Y+dy)%fieldSize + fieldSize) % fieldSize
	s.dirty = true
}

// PanOffset returns the current viewport origin within the field.
func (s *Scene) PanOffset() image.Point {
	return s.pan
}

// Invalidate marks the buffer stale. The rectangle is advisory; the buffer is
// redrawn whole on the next Draw.
func (s *Scene) Invalidate(image.Rectangle) {
	s.dirty = true
}

// Draw copies the buffered starfield onto the screen, rebuilding the buffer
// first if it is stale or the screen size changed.
func (s *Scene) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.buffer == nil || s.buffer.Bounds().Dx() != w || s.buffer.Bounds().Dy() != h {
		s.buffer = ebiten.NewImage(w, h)
		s.dirty = true
	}

	if s.dirty {
		s.redraw(w, h)
		s.dirty = false
	}
	screen.DrawImage(s.buffer, nil)
}

func (s *Scene) redraw(w, h int) {
	s.buffer.Fill(color.RGBA{4, 5, 12, 255})
	for _, st := range s.stars {
		x := ((st.x-s.pan.X)%fieldSize + fieldSize) % fieldSize
		y := ((st.y-s.pan.Y)%fieldSize + fieldSize) % fieldSize
		if x >= w || y >= h {
			continue
		}
		shade := color.RGBA{st.shade, st.shade, st.shade, 255}
		vector.DrawFilledCircle(s.buffer, float32(x), float32(y), st.radius, shade, true)
	}
}
