package console

import (
	"fmt"
	"strings"
	"testing"
)

func TestHistoryAdd_EvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory(3, 256)
	for _, cmd := range []string{"a", "b", "c", "d"} {
		h.Add(cmd)
	}

	want := []string{"b", "c", "d"}
	got := h.Entries()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
	if h.Cursor() != 3 {
		t.Errorf("Cursor() = %d, want 3 (fresh line)", h.Cursor())
	}
}

func TestHistoryAdd_RetainsNMostRecent(t *testing.T) {
	const cap = 8
	h := NewHistory(cap, 256)
	for i := 0; i < 50; i++ {
		h.Add(fmt.Sprintf("cmd %d", i))
		if h.Len() > cap {
			t.Fatalf("Len() = %d, exceeds capacity %d", h.Len(), cap)
		}
	}
	for i, entry := range h.Entries() {
		want := fmt.Sprintf("cmd %d", 50-cap+i)
		if entry != want {
			t.Errorf("entry %d = %q, want %q", i, entry, want)
		}
	}
}

func TestHistoryRecallPrevious_AtOldestIsNoop(t *testing.T) {
	h := NewHistory(4, 256)
	h.Add("first")
	h.Add("second")

	if entry, ok := h.RecallPrevious(); !ok || entry != "second" {
		t.Fatalf("first recall = %q, %v, want second, true", entry, ok)
	}
	if entry, ok := h.RecallPrevious(); !ok || entry != "first" {
		t.Fatalf("second recall = %q, %v, want first, true", entry, ok)
	}
	if _, ok := h.RecallPrevious(); ok {
		t.Error("recall past the oldest entry must be a no-op")
	}
	if h.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0 after recalling to the oldest", h.Cursor())
	}
}

func TestHistoryRecallNext_PastNewestSignalsFreshLine(t *testing.T) {
	h := NewHistory(4, 256)
	h.Add("first")
	h.Add("second")
	h.RecallPrevious() // second
	h.RecallPrevious() // first

	if entry, ok, fresh := h.RecallNext(); !ok || fresh || entry != "second" {
		t.Fatalf("RecallNext = %q, %v, %v, want second, true, false", entry, ok, fresh)
	}

	// Cursor now sits on the newest entry: one more step is the fresh-line
	// boundary, not an error.
	if _, ok, fresh := h.RecallNext(); ok || !fresh {
		t.Fatalf("RecallNext past newest: ok=%v fresh=%v, want false, true", ok, fresh)
	}
	if h.Cursor() != h.Len() {
		t.Errorf("Cursor() = %d, want %d (fresh line)", h.Cursor(), h.Len())
	}
}

func TestHistoryRecallNext_EmptyRingSignalsFreshLine(t *testing.T) {
	h := NewHistory(4, 256)
	if _, ok, fresh := h.RecallNext(); ok || !fresh {
		t.Errorf("RecallNext on empty ring: ok=%v fresh=%v, want false, true", ok, fresh)
	}
}

func TestHistoryRecall_RoundTripReturnsToFreshLine(t *testing.T) {
	h := NewHistory(16, 256)
	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprintf("cmd %d", i))
	}

	// Pressing "previous" k times then "next" k times lands back on the
	// fresh-line state, for every k up to the history length.
	for k := 1; k <= h.Len(); k++ {
		for i := 0; i < k; i++ {
			if _, ok := h.RecallPrevious(); !ok {
				t.Fatalf("k=%d: RecallPrevious %d failed", k, i)
			}
		}
		var fresh bool
		for i := 0; i < k; i++ {
			_, _, fresh = h.RecallNext()
		}
		if !fresh {
			t.Errorf("k=%d: round trip did not end on the fresh-line signal", k)
		}
		if h.Cursor() != h.Len() {
			t.Errorf("k=%d: Cursor() = %d, want %d", k, h.Cursor(), h.Len())
		}
	}
}

func TestHistoryAdd_TruncatesOversizedEntry(t *testing.T) {
	h := NewHistory(4, 10)
	h.Add(strings.Repeat("x", 25))

	if got := h.Entries()[0]; len(got) != 10 {
		t.Errorf("entry length = %d, want 10", len(got))
	}
}

func TestHistoryAdd_TruncationKeepsRuneBoundary(t *testing.T) {
	h := NewHistory(4, 4)
	h.Add("日本語") // 9 bytes, 3 runes

	got := h.Entries()[0]
	if got != "日" {
		t.Errorf("entry = %q, want %q (cut on a rune boundary)", got, "日")
	}
}
