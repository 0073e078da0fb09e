// apps/go-server/internal/game/types.go
//
// Core type definitions for the Simon game engine.
// Defines:
//   - Signal: one entry of the fixed signal alphabet (e.g. "red").
//   - Phase: current state of the turn state machine.
//   - Verdict: per-press evaluation result.
//   - Outcome: terminal result of a finished game.
//   - Effect: a presentation-layer instruction emitted by the engine.
//   - Session: state for a single in-progress or finished game.

package game

import "time"

// Signal is one discrete playable unit in the game's fixed alphabet.
type Signal string

// Phase represents the turn state machine's current state.
// Possible values:
//   - "idle":     no game in progress; waiting for game start.
//   - "computer": the target sequence is being played back to the player.
//   - "player":   the player is reproducing the target sequence.
//   - "over":     terminal phase, visited transiently before reset.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseComputer Phase = "computer"
	PhasePlayer   Phase = "player"
	PhaseOver     Phase = "over"
)

// Verdict is the evaluation result for a single player press.
// Possible values:
//   - "continue":       press matched; more presses remain this round.
//   - "round_complete": press matched and completed the round.
//   - "rejected":       press mismatched the target at its position.
//   - "ignored":        press arrived outside PhasePlayer or named an
//     unknown signal; no state was mutated.
type Verdict string

const (
	VerdictContinue      Verdict = "continue"
	VerdictRoundComplete Verdict = "round_complete"
	VerdictRejected      Verdict = "rejected"
	VerdictIgnored       Verdict = "ignored"
)

// Outcome records how a finished game ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// EffectKind discriminates presentation effects.
type EffectKind string

const (
	EffectSetText      EffectKind = "set_text"      // write Text to Target label
	EffectPlaySignal   EffectKind = "play_signal"   // highlight/sound one Signal
	EffectEnableInput  EffectKind = "enable_input"  // allow player presses
	EffectDisableInput EffectKind = "disable_input" // block player presses
	EffectNotify       EffectKind = "notify"        // terminal user notification
)

// Effect is one presentation instruction. The engine never performs
// I/O itself; it returns Effects for an external scheduler/sink to
// execute. Delay is relative to the moment the effects were emitted;
// zero means immediate.
type Effect struct {
	Kind   EffectKind
	Signal Signal
	Target string
	Text   string
	Delay  time.Duration
}

// StepInterval is the pacing of playback: step i of a round's playback
// fires at (i+1)*StepInterval, and input is enabled one interval after
// the last step.
const StepInterval = 600 * time.Millisecond

// StatusTarget is the label Target used for round/progress text effects.
const StatusTarget = "status"

// Picker chooses an index in [0, n). It exists so the daily mode can
// inject a deterministic chooser; nil means crypto/rand.
type Picker func(n int) int

// Session holds the state of a single Simon game.
// All mutation happens through New and Press; callers must treat the
// exported fields as read-only.
type Session struct {
	ID        string   // unique game identifier (random hex string)
	Level     int      // difficulty level the game was started with
	MaxRounds int      // rounds required to win (from level config)
	Round     int      // current round, 1-based; 0 when idle
	Target    []Signal // sequence the player must reproduce
	Input     []Signal // player presses for the current round
	Phase     Phase    // turn state machine phase
	Outcome   Outcome  // set when the last game ended; empty while playing
	Cleared   int      // rounds fully completed; survives the terminal reset

	alphabet []Signal // signal alphabet the generator draws from
	pick     Picker   // index chooser (nil = crypto/rand)
}
