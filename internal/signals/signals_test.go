package signals

import "testing"

func mustInit(t *testing.T) {
	t.Helper()
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func TestDefaultAlphabet(t *testing.T) {
	mustInit(t)
	want := []string{"red", "green", "blue", "yellow"}
	got := Alphabet()
	if len(got) != len(want) {
		t.Fatalf("expected %d signals, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("signal %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if Stats() != 4 {
		t.Fatalf("expected 4 signals, got %d", Stats())
	}
}

func TestIsSignal(t *testing.T) {
	mustInit(t)
	if !IsSignal("red") || !IsSignal("YELLOW") {
		t.Fatalf("expected alphabet members to match")
	}
	if IsSignal("purple") || IsSignal("") {
		t.Fatalf("expected non-members to be rejected")
	}
}

func TestDedupe(t *testing.T) {
	list, set := dedupe([]string{"red", "blue", "red"})
	if len(list) != 2 || list[0] != "red" || list[1] != "blue" {
		t.Fatalf("unexpected dedupe result: %v", list)
	}
	if len(set) != 2 {
		t.Fatalf("unexpected set size: %d", len(set))
	}
}

func TestIsWord(t *testing.T) {
	if !isWord("red") {
		t.Fatalf("expected red to be valid")
	}
	for _, bad := range []string{"", "Red", "a b", "thisnameiswaytoolongtobeasignal"} {
		if isWord(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}
