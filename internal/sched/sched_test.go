package sched

import (
	"testing"
	"time"

	"github.com/robalobadob/simon/apps/go-server/internal/game"
)

func TestRunSyncOrdersByDelay(t *testing.T) {
	effects := []game.Effect{
		{Kind: game.EffectEnableInput, Delay: 3 * game.StepInterval},
		{Kind: game.EffectPlaySignal, Signal: "red", Delay: game.StepInterval},
		{Kind: game.EffectDisableInput},
		{Kind: game.EffectPlaySignal, Signal: "blue", Delay: 2 * game.StepInterval},
	}
	var got []game.EffectKind
	New().RunSync(effects, func(e game.Effect) { got = append(got, e.Kind) })

	want := []game.EffectKind{
		game.EffectDisableInput,
		game.EffectPlaySignal,
		game.EffectPlaySignal,
		game.EffectEnableInput,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d effects, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRunDeliversImmediateEffectsSynchronously(t *testing.T) {
	effects := []game.Effect{
		{Kind: game.EffectDisableInput},
		{Kind: game.EffectSetText, Target: game.StatusTarget, Text: "Round 1 of 8"},
	}
	var got int
	New().Run(effects, func(game.Effect) { got++ })
	if got != 2 {
		t.Fatalf("expected 2 immediate deliveries, got %d", got)
	}
}

func TestRunDeliversDelayedEffects(t *testing.T) {
	effects := []game.Effect{
		{Kind: game.EffectPlaySignal, Signal: "red", Delay: 5 * time.Millisecond},
	}
	done := make(chan game.Effect, 1)
	New().Run(effects, func(e game.Effect) { done <- e })
	select {
	case e := <-done:
		if e.Signal != "red" {
			t.Fatalf("expected red, got %q", e.Signal)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("delayed effect never delivered")
	}
}

func TestDuration(t *testing.T) {
	effects := []game.Effect{
		{Kind: game.EffectDisableInput},
		{Kind: game.EffectPlaySignal, Delay: game.StepInterval},
		{Kind: game.EffectEnableInput, Delay: 2 * game.StepInterval},
	}
	if got := Duration(effects); got != 2*game.StepInterval {
		t.Fatalf("expected %v, got %v", 2*game.StepInterval, got)
	}
	if got := Duration(nil); got != 0 {
		t.Fatalf("expected 0 for empty batch, got %v", got)
	}
}
