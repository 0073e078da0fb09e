package game

import (
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/simon/apps/go-server/internal/levels"
)

var testAlphabet = []Signal{"red", "green", "blue", "yellow"}

// pickFirst always chooses alphabet index 0 ("red").
func pickFirst(n int) int { return 0 }

func mustInitLevels(t *testing.T) {
	t.Helper()
	if err := levels.Init(); err != nil {
		t.Fatalf("levels.Init: %v", err)
	}
}

func effectsOfKind(effects []Effect, kind EffectKind) []Effect {
	var out []Effect
	for _, e := range effects {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestNewGameLevelOne(t *testing.T) {
	mustInitLevels(t)
	g, effects, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.MaxRounds != 8 {
		t.Fatalf("expected maxRounds 8, got %d", g.MaxRounds)
	}
	if g.Round != 1 {
		t.Fatalf("expected round 1, got %d", g.Round)
	}
	if len(g.Target) != 1 {
		t.Fatalf("expected target length 1, got %d", len(g.Target))
	}
	if g.Phase != PhasePlayer {
		t.Fatalf("expected player phase after playback handoff, got %q", g.Phase)
	}

	plays := effectsOfKind(effects, EffectPlaySignal)
	if len(plays) != 1 {
		t.Fatalf("expected 1 playback step, got %d", len(plays))
	}
	if plays[0].Delay != StepInterval {
		t.Fatalf("expected first step at %v, got %v", StepInterval, plays[0].Delay)
	}
	enables := effectsOfKind(effects, EffectEnableInput)
	if len(enables) != 1 {
		t.Fatalf("expected an enable-input effect")
	}
	if enables[0].Delay != 2*StepInterval {
		t.Fatalf("expected input handoff at %v, got %v", 2*StepInterval, enables[0].Delay)
	}
	if len(effectsOfKind(effects, EffectDisableInput)) != 1 {
		t.Fatalf("expected playback to disable input")
	}
}

func TestNewGameDefaultLevel(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(0, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Level != levels.DefaultLevel {
		t.Fatalf("expected default level %d, got %d", levels.DefaultLevel, g.Level)
	}
	if g.MaxRounds != 8 {
		t.Fatalf("expected maxRounds 8, got %d", g.MaxRounds)
	}
}

func TestNewGameUnknownLevelAbortsStart(t *testing.T) {
	mustInitLevels(t)
	_, _, err := New(7, testAlphabet, pickFirst)
	if err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if !strings.Contains(err.Error(), "unknown level 7") {
		t.Fatalf("expected descriptive validation error, got %q", err.Error())
	}
}

func TestMismatchEndsGameImmediately(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Target is [red]; pressing green loses on the spot.
	verdict, effects := g.Press("green")
	if verdict != VerdictRejected {
		t.Fatalf("expected rejected, got %q", verdict)
	}
	notifies := effectsOfKind(effects, EffectNotify)
	if len(notifies) != 1 {
		t.Fatalf("expected a loss notification")
	}
	if !strings.Contains(notifies[0].Text, "Game over") {
		t.Fatalf("expected loss message, got %q", notifies[0].Text)
	}
	// State resets to Idle's initial values.
	if g.Round != 0 || g.MaxRounds != 0 {
		t.Fatalf("expected reset round/maxRounds, got %d/%d", g.Round, g.MaxRounds)
	}
	if len(g.Target) != 0 || len(g.Input) != 0 {
		t.Fatalf("expected cleared sequences, got %d/%d", len(g.Target), len(g.Input))
	}
	if g.Phase != PhaseIdle {
		t.Fatalf("expected idle phase, got %q", g.Phase)
	}
	if g.State() != "lost" {
		t.Fatalf("expected lost state, got %q", g.State())
	}
}

func TestRoundCompletionAdvances(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verdict, effects := g.Press("red")
	if verdict != VerdictRoundComplete {
		t.Fatalf("expected round_complete, got %q", verdict)
	}
	if g.Round != 2 {
		t.Fatalf("expected round counter 2, got %d", g.Round)
	}
	if len(g.Target) != 2 {
		t.Fatalf("expected target grown to 2, got %d", len(g.Target))
	}
	if len(g.Input) != 0 {
		t.Fatalf("expected cleared player input, got %d", len(g.Input))
	}
	plays := effectsOfKind(effects, EffectPlaySignal)
	if len(plays) != 2 {
		t.Fatalf("expected playback of 2 signals, got %d", len(plays))
	}
	// Steps are paced proportionally to their position.
	for i, p := range plays {
		want := time.Duration(i+1) * StepInterval
		if p.Delay != want {
			t.Fatalf("step %d: expected delay %v, got %v", i, want, p.Delay)
		}
	}
}

func TestPerPressProgressFeedback(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Press("red") // round 1 done; round 2 target is [red red]

	verdict, effects := g.Press("red")
	if verdict != VerdictContinue {
		t.Fatalf("expected continue, got %q", verdict)
	}
	texts := effectsOfKind(effects, EffectSetText)
	if len(texts) != 1 || texts[0].Text != "1 press left" {
		t.Fatalf("expected presses-left feedback, got %+v", texts)
	}
	if g.PressesLeft() != 1 {
		t.Fatalf("expected 1 press left, got %d", g.PressesLeft())
	}
}

func TestInputNeverExceedsTarget(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for g.State() == "playing" {
		if len(g.Input) > len(g.Target) {
			t.Fatalf("invariant violated: input %d > target %d", len(g.Input), len(g.Target))
		}
		g.Press("red")
	}
	if g.State() != "won" {
		t.Fatalf("expected all-red run to win, got %q", g.State())
	}
}

func TestWinAtMaxRounds(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var lastEffects []Effect
	for round := 1; round <= 8; round++ {
		for press := 0; press < round; press++ {
			_, lastEffects = g.Press("red")
		}
	}
	if g.State() != "won" {
		t.Fatalf("expected win after 8 rounds, got %q", g.State())
	}
	if g.RoundsCleared() != 8 {
		t.Fatalf("expected 8 rounds cleared, got %d", g.RoundsCleared())
	}
	notifies := effectsOfKind(lastEffects, EffectNotify)
	if len(notifies) != 1 || !strings.Contains(notifies[0].Text, "You win") {
		t.Fatalf("expected win notification, got %+v", notifies)
	}
	if g.Round != 0 || g.MaxRounds != 0 || g.Phase != PhaseIdle {
		t.Fatalf("expected reset after win, got round=%d max=%d phase=%q", g.Round, g.MaxRounds, g.Phase)
	}
}

func TestPressesIgnoredAfterGameOver(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Press("green") // lose immediately

	// Replaying presses must not double-advance anything.
	verdict, effects := g.Press("red")
	if verdict != VerdictIgnored {
		t.Fatalf("expected ignored press after game over, got %q", verdict)
	}
	if effects != nil {
		t.Fatalf("expected no effects for ignored press, got %d", len(effects))
	}
	if g.Round != 0 || len(g.Target) != 0 {
		t.Fatalf("state mutated by ignored press: round=%d target=%d", g.Round, len(g.Target))
	}
}

func TestUnknownSignalIsNoOp(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, testAlphabet, pickFirst)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verdict, effects := g.Press("purple")
	if verdict != VerdictIgnored {
		t.Fatalf("expected ignored unknown signal, got %q", verdict)
	}
	if effects != nil {
		t.Fatalf("expected no effects, got %d", len(effects))
	}
	if len(g.Input) != 0 {
		t.Fatalf("unknown signal mutated input: %v", g.Input)
	}
}

func TestEmptyAlphabetNeverGrowsTarget(t *testing.T) {
	mustInitLevels(t)
	g, _, err := New(1, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(g.Target) != 0 {
		t.Fatalf("expected empty target with empty alphabet, got %d", len(g.Target))
	}
}

func TestParseSignal(t *testing.T) {
	if s := ParseSignal("  RED \n"); s != "red" {
		t.Fatalf("expected normalized signal, got %q", s)
	}
}
