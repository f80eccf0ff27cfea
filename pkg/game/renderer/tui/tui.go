// Package tui mirrors console output onto a real terminal. With the mirror
// enabled, every line the in-game console prints is also written to stdout
// with matching colours, which makes the console readable in a log or a
// piped capture.
package tui

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"stardrift/pkg/engine/console"
	"stardrift/pkg/engine/terminal"
)

// Mirror writes console lines to a terminal. It implements the console's
// line sink.
type Mirror struct {
	out     io.Writer
	styles  map[console.Colour]color.Style
	colours bool
	width   int
}

// New creates a mirror writing to out. Colour output is only used when out
// is an interactive terminal.
func New(out io.Writer) *Mirror {
	m := &Mirror{
		out:     out,
		colours: terminal.IsTerminal(out),
		width:   terminal.WidthOf(out),
	}
	m.initColors()
	return m
}

func (m *Mirror) initColors() {
	m.styles = map[console.Colour]color.Style{
		console.ColourDefault: {},
		console.ColourBlack:   {color.FgBlack},
		console.ColourWhite:   {color.FgWhite, color.OpBold},
		console.ColourRed:     {color.FgRed, color.OpBold},
		console.ColourGreen:   {color.FgGreen},
		console.ColourYellow:  {color.FgYellow},
		console.ColourBlue:    {color.FgBlue},
		console.ColourMuted:   {color.FgGray},
	}
}

// Emit writes one console line, wrapped to the terminal width.
func (m *Mirror) Emit(line console.Line) {
	for _, chunk := range wrap(line.Text, m.width) {
		if style, ok := m.styles[line.Colour]; ok && m.colours && len(style) > 0 {
			fmt.Fprintln(m.out, style.Sprint(chunk))
		} else {
			fmt.Fprintln(m.out, chunk)
		}
	}
}

// wrap splits s into rune chunks no wider than the given column count. An
// empty line still yields one chunk so blank scrollback lines stay visible.
func wrap(s string, columns int) []string {
	if columns < 1 {
		columns = terminal.FallbackWidth
	}
	runes := []rune(s)
	if len(runes) <= columns {
		return []string{s}
	}

	var chunks []string
	for len(runes) > columns {
		chunks = append(chunks, string(runes[:columns]))
		runes = runes[columns:]
	}
	return append(chunks, string(runes))
}
