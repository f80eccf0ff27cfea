package console

import (
	"image"

	"github.com/leonelquinteros/gotext"
)

// Input is an input event delivered to the console while it is open.
type Input int

// Input events. Unrecognized values are ignored.
const (
	LineClear Input = iota
	LineExecute
	HistoryPrevious
	HistoryNext
	ScrollPrevious
	ScrollNext
)

// Executor runs a submitted command line. It is invoked for its side effects
// only; output comes back through the console's LineWriter surface.
type Executor interface {
	Execute(line string)
}

// TextCapture is the external keystroke capture collaborator. The console
// guarantees at most one session is active at a time and that Stop is called
// before the edit buffer it writes into is invalidated.
type TextCapture interface {
	Start(e *Edit)
	Stop()
}

// Invalidator marks a screen region as needing a redraw.
type Invalidator interface {
	Invalidate(r image.Rectangle)
}

// LineWriter is the console's output surface, implemented by *Console and
// consumed by command implementations.
type LineWriter interface {
	WriteLine(text string)
	WriteColoured(text string, colour Colour)
}

// LineSink receives every appended scrollback line, e.g. to mirror the
// console to the hosting terminal.
type LineSink interface {
	Emit(line Line)
}

const prompt = "> "

// Options configures a Console. Zero fields fall back to the package
// defaults; collaborators may be nil.
type Options struct {
	AppName       string
	MaxLines      int
	HistorySize   int
	InputCapacity int
	Height        int
	BlinkCycle    int
	BlinkOnTicks  int

	Metrics     TextMetrics
	Capture     TextCapture
	Executor    Executor
	Invalidator Invalidator
	Sink        LineSink
}

// Console orchestrates the scrollback, history ring, edit line and viewport
// under the host's per-frame update/draw cycle. It is not safe for concurrent
// use: the host's update loop owns it exclusively.
type Console struct {
	scrollback *Scrollback
	history    *History
	edit       *Edit
	viewport   *Viewport

	open      bool
	capturing bool
	height    int

	capture     TextCapture
	executor    Executor
	invalidator Invalidator
	sink        LineSink

	lastPan image.Point
	panSeen bool
}

// New creates a console, writes the greeting and the initial prompt line.
func New(opts Options) *Console {
	if opts.Height < 1 {
		opts.Height = DefaultHeight
	}

	c := &Console{
		scrollback:  NewScrollback(opts.MaxLines),
		history:     NewHistory(opts.HistorySize, opts.InputCapacity),
		edit:        NewEdit(opts.InputCapacity, opts.Metrics),
		viewport:    NewViewport(opts.Metrics, opts.BlinkCycle, opts.BlinkOnTicks),
		height:      opts.Height,
		capture:     opts.Capture,
		executor:    opts.Executor,
		invalidator: opts.Invalidator,
		sink:        opts.Sink,
	}
	c.edit.SetCaretHook(c.viewport.RestartBlink)

	name := opts.AppName
	if name == "" {
		name = "Console"
	}
	c.WriteLine(name)
	c.WriteLine(gotext.Get("Type 'help' for a list of available commands. Type 'hide' to hide the console."))
	c.WriteLine("")
	c.writePrompt()

	return c
}

// IsOpen reports whether the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Open shows the console: scrolls to the newest line, makes the caret solid
// and starts the keystroke capture session.
func (c *Console) Open() {
	if c.open {
		return
	}
	c.open = true
	c.viewport.ScrollToEnd(c.scrollback.Len())
	c.edit.MoveCaretTo(c.edit.Caret())
	c.startCapture()
}

// Close hides the console, tears down the capture session and marks the
// console region for redraw.
func (c *Console) Close() {
	if !c.open {
		return
	}
	c.stopCapture()
	c.open = false
	if c.invalidator != nil {
		c.invalidator.Invalidate(c.viewport.Region())
	}
}

// Hide is an alias for Close, matching the 'hide' command.
func (c *Console) Hide() {
	c.Close()
}

// Toggle flips between the open and closed states.
func (c *Console) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

// Handle applies one input event. Events are only valid while the console is
// open; anything else is ignored.
func (c *Console) Handle(in Input) {
	if !c.open {
		return
	}

	switch in {
	case LineClear:
		c.clearInput()

	case LineExecute:
		if !c.edit.Empty() {
			line := c.edit.Content()
			c.history.Add(line)

			// Echo the command onto the prompt line before any output.
			c.scrollback.AppendToLast(line)

			if c.executor != nil {
				c.executor.Execute(line)
			}
			c.writePrompt()
			c.clearInput()
		}
		// Scrolling to the end happens after the fresh prompt is appended,
		// so the prompt is guaranteed visible. It also happens on an empty
		// submit.
		c.viewport.ScrollToEnd(c.scrollback.Len())

	case HistoryPrevious:
		if entry, ok := c.history.RecallPrevious(); ok {
			c.loadRecalled(entry)
		}

	case HistoryNext:
		entry, ok, fresh := c.history.RecallNext()
		if ok {
			c.loadRecalled(entry)
		} else if fresh {
			c.clearInput()
		}

	case ScrollPrevious:
		c.viewport.ScrollBy(c.viewport.VisibleLineCount()-1, c.scrollback.Len())

	case ScrollNext:
		c.viewport.ScrollBy(-(c.viewport.VisibleLineCount() - 1), c.scrollback.Len())
	}
}

// WriteLine appends text to the scrollback with the default colour,
// splitting on newlines.
func (c *Console) WriteLine(text string) {
	c.WriteColoured(text, ColourDefault)
}

// WriteColoured appends text to the scrollback with a colour tag, splitting
// on newlines. The scroll offset is re-clamped afterwards so eviction can
// never leave it past the true history bound.
func (c *Console) WriteColoured(text string, colour Colour) {
	appended := c.scrollback.Write(text, colour)
	if c.sink != nil {
		for i := c.scrollback.Len() - appended; i < c.scrollback.Len(); i++ {
			c.sink.Emit(c.scrollback.At(i))
		}
	}
	c.viewport.ScrollBy(0, c.scrollback.Len())
}

// Clear discards the scrollback and snaps the view to the (now empty) end.
func (c *Console) Clear() {
	c.scrollback.Clear()
	c.viewport.ScrollToEnd(0)
}

// ClearLine empties the line being typed.
func (c *Console) ClearLine() {
	c.clearInput()
}

// HistoryEntries returns the retained command history, oldest first.
func (c *Console) HistoryEntries() []string {
	return c.history.Entries()
}

// Edit returns the edit buffer the capture session writes into.
func (c *Console) Edit() *Edit {
	return c.edit
}

// Update runs the per-tick state step: recomputes the console region from the
// current screen size, forces a full redraw while the console overlays a
// panning view, and advances the caret blink phase. Call exactly once per
// logical frame.
func (c *Console) Update(screen image.Point, pan image.Point) {
	c.viewport.SetRegion(image.Point{}, image.Point{X: screen.X, Y: c.height})

	if c.open {
		// The view under the console has panned; its pixels are stale
		// everywhere, not just inside the console region.
		if c.panSeen && pan != c.lastPan && c.invalidator != nil {
			c.invalidator.Invalidate(image.Rectangle{Max: screen})
		}
		c.lastPan = pan
		c.panSeen = true
	}

	c.viewport.Tick()
}

// Frame is an immutable snapshot of everything the renderer needs for one
// draw. Drawing from a Frame never mutates console state.
type Frame struct {
	Open         bool
	Region       image.Rectangle
	Lines        []Line
	Input        string
	CaretX       int
	CaretVisible bool
	LineHeight   int
}

// Frame captures the current render snapshot.
func (c *Console) Frame() Frame {
	if !c.open {
		return Frame{}
	}

	lineHeight := 0
	if c.edit.metrics != nil {
		lineHeight = c.edit.metrics.LineHeight()
	}

	return Frame{
		Open:         true,
		Region:       c.viewport.Region(),
		Lines:        c.scrollback.Window(c.viewport.Scroll(), c.viewport.VisibleLineCount()),
		Input:        c.edit.Content(),
		CaretX:       c.edit.CaretX(),
		CaretVisible: c.viewport.CaretVisible(),
		LineHeight:   lineHeight,
	}
}

func (c *Console) writePrompt() {
	c.WriteLine(prompt)
}

func (c *Console) clearInput() {
	c.edit.Clear()
}

// loadRecalled overwrites the edit line with a history entry and puts the
// caret at the end of it.
func (c *Console) loadRecalled(entry string) {
	if err := c.edit.SetContent(entry); err != nil {
		// Entries are truncated to the edit capacity on Add; reaching this
		// would mean the bound was violated upstream.
		return
	}
	c.edit.CaretToEnd()
}

func (c *Console) startCapture() {
	if c.capture == nil || c.capturing {
		return
	}
	c.capture.Start(c.edit)
	c.capturing = true
}

func (c *Console) stopCapture() {
	if c.capture == nil || !c.capturing {
		return
	}
	c.capture.Stop()
	c.capturing = false
}
