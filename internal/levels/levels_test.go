package levels

import (
	"strings"
	"testing"
)

func mustInit(t *testing.T) {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestDefaultTable(t *testing.T) {
	mustInit(t)
	want := map[int]int{1: 8, 2: 14, 3: 20, 4: 31}
	for lvl, rounds := range want {
		got, err := Rounds(lvl)
		if err != nil {
			t.Fatalf("Rounds(%d): %v", lvl, err)
		}
		if got != rounds {
			t.Fatalf("Rounds(%d): expected %d, got %d", lvl, rounds, got)
		}
	}
}

func TestUnknownLevelError(t *testing.T) {
	mustInit(t)
	_, err := Rounds(9)
	if err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "unknown level 9") {
		t.Fatalf("expected descriptive message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "1, 2, 3, 4") {
		t.Fatalf("expected valid levels in message, got %q", err.Error())
	}
}

func TestZeroSelectsDefaultLevel(t *testing.T) {
	mustInit(t)
	got, err := Rounds(0)
	if err != nil {
		t.Fatalf("Rounds(0): %v", err)
	}
	if got != 8 {
		t.Fatalf("expected default level rounds 8, got %d", got)
	}
}

func TestLevelsSorted(t *testing.T) {
	mustInit(t)
	got := Levels()
	if len(got) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("levels not sorted: %v", got)
		}
	}
}

func TestParseTableMalformed(t *testing.T) {
	if _, err := parseTable([]string{"1 8", "oops"}); err == nil {
		t.Fatalf("expected error for malformed line")
	}
	if _, err := parseTable([]string{"1 0"}); err == nil {
		t.Fatalf("expected error for non-positive round count")
	}
	if _, err := parseTable([]string{"-1 8"}); err == nil {
		t.Fatalf("expected error for non-positive level")
	}
}
