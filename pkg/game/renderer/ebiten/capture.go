package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"stardrift/pkg/engine/console"
)

// Capture is the console's keystroke capture session, backed by Ebiten's
// keyboard state. The console starts it on open and stops it on close; while
// active, Update must be called once per frame to drain pending input into
// the edit buffer.
type Capture struct {
	edit   *console.Edit
	active bool
	runes  []rune
}

// NewCapture creates an idle capture.
func NewCapture() *Capture {
	return &Capture{}
}

// Start begins capturing into the given edit buffer.
func (c *Capture) Start(e *console.Edit) {
	c.edit = e
	c.active = true
}

// Stop ends the session and drops the buffer reference.
func (c *Capture) Stop() {
	c.active = false
	c.edit = nil
}

// Update applies this frame's pending keystrokes to the edit buffer:
// printable characters at the caret, plus backspace/delete and caret
// movement. Inert while no session is active.
func (c *Capture) Update() {
	if !c.active {
		return
	}

	c.runes = ebiten.AppendInputChars(c.runes[:0])
	for _, r := range c.runes {
		// The backquote toggles the console itself and must not leak into
		// the line; control characters never belong in it.
		if r == '`' || r < ' ' {
			continue
		}
		c.edit.InsertString(string(r))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		c.edit.DeleteBackward()
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		c.edit.DeleteForward()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		c.edit.CaretLeft()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		c.edit.CaretRight()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		c.edit.CaretToStart()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		c.edit.CaretToEnd()
	}
}

// ProcessKeys translates this frame's control keys into console input events.
// Character input is handled by Capture; this covers submit, recall, scroll
// and line-clear.
func ProcessKeys(c *console.Console) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		inpututil.IsKeyJustPressed(ebiten.KeyKPEnter):
		c.Handle(console.LineExecute)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		c.Handle(console.HistoryPrevious)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		c.Handle(console.HistoryNext)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		c.Handle(console.ScrollPrevious)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		c.Handle(console.ScrollNext)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		c.Handle(console.LineClear)
	}
}
