package console

import (
	"fmt"
	"testing"
)

func TestScrollbackWrite_SplitsOnNewlines(t *testing.T) {
	s := NewScrollback(10)
	n := s.Write("hello\nworld", ColourDefault)

	if n != 2 {
		t.Fatalf("Write returned %d appended lines, want 2", n)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.At(0).Text != "hello" || s.At(1).Text != "world" {
		t.Errorf("lines = %q, %q, want hello, world", s.At(0).Text, s.At(1).Text)
	}
	if s.At(0).Colour != ColourDefault || s.At(1).Colour != ColourDefault {
		t.Errorf("default write must not carry a colour tag")
	}
}

func TestScrollbackWrite_TrailingNewlineAppendsEmptyLine(t *testing.T) {
	s := NewScrollback(10)
	s.Write("a\n", ColourDefault)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.At(1).Text != "" {
		t.Errorf("second line = %q, want empty", s.At(1).Text)
	}
}

func TestScrollbackWrite_KeepsColourTag(t *testing.T) {
	s := NewScrollback(10)
	s.Write("error: no such command", ColourRed)

	if got := s.At(0).Colour; got != ColourRed {
		t.Errorf("colour = %d, want ColourRed", got)
	}
}

func TestScrollbackWrite_EvictsOldestBeyondCap(t *testing.T) {
	const cap = 5
	s := NewScrollback(cap)
	for i := 0; i < 100; i++ {
		s.Write(fmt.Sprintf("line %d", i), ColourDefault)
		if s.Len() > cap {
			t.Fatalf("after %d writes Len() = %d, exceeds cap %d", i+1, s.Len(), cap)
		}
	}

	// The retained lines are the most recent ones, in original order.
	for i := 0; i < cap; i++ {
		want := fmt.Sprintf("line %d", 100-cap+i)
		if s.At(i).Text != want {
			t.Errorf("At(%d) = %q, want %q", i, s.At(i).Text, want)
		}
	}
}

func TestScrollbackAppendToLast(t *testing.T) {
	s := NewScrollback(10)
	s.Write("> ", ColourDefault)
	s.AppendToLast("help")

	if got := s.At(0).Text; got != "> help" {
		t.Errorf("last line = %q, want %q", got, "> help")
	}
}

func TestScrollbackAppendToLast_EmptyBufferIsNoop(t *testing.T) {
	s := NewScrollback(10)
	s.AppendToLast("help")

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestScrollbackWindow_ClampsToRetainedRange(t *testing.T) {
	s := NewScrollback(10)
	for i := 0; i < 6; i++ {
		s.Write(fmt.Sprintf("line %d", i), ColourDefault)
	}

	tests := []struct {
		name  string
		from  int
		count int
		want  int
	}{
		{"inside", 1, 3, 3},
		{"past end", 4, 10, 2},
		{"negative from", -2, 3, 3},
		{"from beyond", 9, 3, 0},
		{"zero count", 2, 0, 0},
	}

	for _, tc := range tests {
		if got := len(s.Window(tc.from, tc.count)); got != tc.want {
			t.Errorf("%s: Window(%d, %d) returned %d lines, want %d", tc.name, tc.from, tc.count, got, tc.want)
		}
	}
}

func TestScrollbackClear(t *testing.T) {
	s := NewScrollback(10)
	s.Write("one\ntwo", ColourDefault)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}
