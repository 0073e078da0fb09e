package game

import "testing"

func TestJudgeRejectsPositionalMismatch(t *testing.T) {
	target := []Signal{"red", "blue"}
	if v := Judge(target, nil, "green"); v != VerdictRejected {
		t.Fatalf("expected rejected, got %q", v)
	}
	// First press matched; second press mismatches at position 1.
	if v := Judge(target, []Signal{"red"}, "red"); v != VerdictRejected {
		t.Fatalf("expected rejected at position 1, got %q", v)
	}
}

func TestJudgeContinueThenRoundComplete(t *testing.T) {
	target := []Signal{"red", "blue", "red"}
	if v := Judge(target, nil, "red"); v != VerdictContinue {
		t.Fatalf("expected continue, got %q", v)
	}
	if v := Judge(target, []Signal{"red"}, "blue"); v != VerdictContinue {
		t.Fatalf("expected continue, got %q", v)
	}
	if v := Judge(target, []Signal{"red", "blue"}, "red"); v != VerdictRoundComplete {
		t.Fatalf("expected round_complete, got %q", v)
	}
}

func TestJudgeSingleSignalRound(t *testing.T) {
	if v := Judge([]Signal{"yellow"}, nil, "yellow"); v != VerdictRoundComplete {
		t.Fatalf("expected round_complete, got %q", v)
	}
}
