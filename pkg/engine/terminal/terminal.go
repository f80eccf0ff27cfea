// Package terminal probes the controlling terminal for the console's
// stdout mirror.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback size used when the writer is not a terminal, e.g. when the
// mirror is piped to a file.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// SizeOf returns the column and row count of the terminal behind w. Writers
// that are not terminals get the fallback size.
func SizeOf(w io.Writer) (columns, rows int) {
	f, ok := w.(*os.File)
	if !ok {
		return FallbackWidth, FallbackHeight
	}
	columns, rows, err := term.GetSize(int(f.Fd()))
	if err != nil || columns < 1 || rows < 1 {
		return FallbackWidth, FallbackHeight
	}
	return columns, rows
}

// WidthOf returns just the column count of the terminal behind w.
func WidthOf(w io.Writer) int {
	columns, _ := SizeOf(w)
	return columns
}

// IsTerminal reports whether w is an interactive terminal. The mirror uses
// this to decide whether colour codes are worth emitting.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
