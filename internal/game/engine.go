// apps/go-server/internal/game/engine.go
//
// Turn state machine for a single Simon session.
// Responsibilities:
//   - Start games: resolve level → max rounds, reset state, build the
//     first target signal and its playback effects.
//   - Apply presses: per-press validation, immediate loss on mismatch,
//     round advancement on completion, win detection at max rounds.
//   - Emit presentation effects (playback steps, input gating, status
//     text, terminal notifications) as data; no timers, no I/O.
//
// Notes:
//   - Phases: idle → computer → player → (evaluation) → computer|over.
//     Evaluation is transient and resolved inside Press.
//   - Terminal transitions reset the session to idle zero values; only
//     Outcome survives so callers can report how the game ended.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/simon/apps/go-server/internal/levels"
)

// New starts a game: the Idle → ComputerTurn transition.
// level 0 selects the default level; unknown levels abort the start
// with the level table's validation error. The returned effects play
// back the first round's single-signal target.
func New(level int, alphabet []Signal, pick Picker) (*Session, []Effect, error) {
	maxRounds, err := levels.Rounds(level)
	if err != nil {
		return nil, nil, err
	}
	if level == 0 {
		level = levels.DefaultLevel
	}
	s := &Session{
		ID:        randomID(),
		Level:     level,
		MaxRounds: maxRounds,
		Round:     1,
		Target:    []Signal{},
		Input:     []Signal{},
		Phase:     PhaseComputer,
		alphabet:  alphabet,
		pick:      pick,
	}
	eff := s.computerTurn()
	return s, eff, nil
}

// Press feeds one player press through the validator and advances the
// state machine. Presses outside PhasePlayer, or naming a signal not
// in the alphabet, are ignored without mutating any state.
func (s *Session) Press(sig Signal) (Verdict, []Effect) {
	if s.Phase != PhasePlayer || !s.knownSignal(sig) {
		return VerdictIgnored, nil
	}

	verdict := Judge(s.Target, s.Input, sig)
	switch verdict {
	case VerdictRejected:
		// Immediate loss: no waiting for the rest of the sequence.
		return verdict, s.gameOver(OutcomeLost)

	case VerdictContinue:
		s.Input = append(s.Input, sig)
		left := len(s.Target) - len(s.Input)
		return verdict, []Effect{
			{Kind: EffectSetText, Target: StatusTarget, Text: pressesLeftText(left)},
		}

	case VerdictRoundComplete:
		s.Input = append(s.Input, sig)
		s.Cleared++
		return verdict, s.evaluateRound()
	}
	return VerdictIgnored, nil
}

// evaluateRound is the RoundEvaluation state: win at max rounds,
// otherwise advance to the next ComputerTurn.
func (s *Session) evaluateRound() []Effect {
	if len(s.Target) >= s.MaxRounds {
		return s.gameOver(OutcomeWon)
	}
	s.Round++
	s.Input = []Signal{}
	s.Phase = PhaseComputer
	return s.computerTurn()
}

// computerTurn appends one new signal to the target (when the alphabet
// is non-empty), emits the round's full playback, and hands off to
// PhasePlayer. Playback step i fires at (i+1)*StepInterval; input is
// enabled one interval after the last step.
func (s *Session) computerTurn() []Effect {
	if next, ok := NextSignal(s.pick, s.alphabet); ok {
		s.Target = append(s.Target, next)
	}

	eff := []Effect{
		{Kind: EffectDisableInput},
		{Kind: EffectSetText, Target: StatusTarget, Text: fmt.Sprintf("Round %d of %d", s.Round, s.MaxRounds)},
	}
	for i, sig := range s.Target {
		eff = append(eff, Effect{
			Kind:   EffectPlaySignal,
			Signal: sig,
			Delay:  time.Duration(i+1) * StepInterval,
		})
	}
	handoff := time.Duration(len(s.Target)+1) * StepInterval
	eff = append(eff, Effect{Kind: EffectEnableInput, Delay: handoff})

	s.Phase = PhasePlayer
	return eff
}

// gameOver emits the terminal notification and resets the session to
// idle zero values. Only ID, Level, and Outcome survive the reset.
func (s *Session) gameOver(outcome Outcome) []Effect {
	var msg string
	if outcome == OutcomeWon {
		msg = fmt.Sprintf("You win! All %d rounds cleared.", s.MaxRounds)
	} else {
		msg = fmt.Sprintf("Game over! You made it to round %d.", s.Round)
	}
	s.Phase = PhaseOver
	s.Outcome = outcome

	// Reset to Idle's initial values; game start is re-enabled.
	s.Round = 0
	s.MaxRounds = 0
	s.Target = []Signal{}
	s.Input = []Signal{}
	s.Phase = PhaseIdle

	return []Effect{
		{Kind: EffectDisableInput},
		{Kind: EffectNotify, Text: msg},
	}
}

// RoundsCleared reports how many full rounds the player has completed.
func (s *Session) RoundsCleared() int {
	return s.Cleared
}

// PressesLeft reports how many presses remain in the current round.
func (s *Session) PressesLeft() int {
	return len(s.Target) - len(s.Input)
}

// State reports a coarse string representation of the session state.
func (s *Session) State() string {
	switch {
	case s.Outcome != "":
		return string(s.Outcome)
	case s.Phase == PhaseIdle:
		return "idle"
	default:
		return "playing"
	}
}

// knownSignal reports whether sig is part of the session's alphabet.
func (s *Session) knownSignal(sig Signal) bool {
	for _, a := range s.alphabet {
		if a == sig {
			return true
		}
	}
	return false
}

// pressesLeftText renders the per-press progress feedback.
func pressesLeftText(left int) string {
	if left == 1 {
		return "1 press left"
	}
	return fmt.Sprintf("%d presses left", left)
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// ParseSignal normalizes raw input into a Signal. It does not check
// alphabet membership; Press handles unknown signals as no-ops.
func ParseSignal(raw string) Signal {
	return Signal(strings.TrimSpace(strings.ToLower(raw)))
}
