// Package console implements the in-game developer console: a bounded
// scrollback buffer, a command history ring, the line being edited, viewport
// scrolling, and the open/closed lifecycle. Rendering and raw key capture are
// collaborators supplied by the host; the core never touches the screen or the
// keyboard directly.
package console

// Colour is the optional leading colour tag carried by a scrollback line.
// The zero value is the default text colour.
type Colour uint8

// Colour tags understood by the renderers.
const (
	ColourDefault Colour = iota
	ColourBlack
	ColourWhite
	ColourRed
	ColourGreen
	ColourYellow
	ColourBlue
	ColourMuted
)

// Line is a single scrollback entry. Lines are created by Scrollback.Write and
// never mutated afterwards, except for the prompt-echo append on execute.
type Line struct {
	Text   string
	Colour Colour
}
