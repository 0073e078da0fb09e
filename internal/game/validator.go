// apps/go-server/internal/game/validator.go
//
// Input validator: positional comparison of a candidate press against
// the target sequence. Evaluation happens after every single press, so
// a mismatch ends the game immediately instead of waiting for the full
// sequence (round pacing feedback depends on this).

package game

// Judge evaluates candidate against target at the position equal to
// the current input length (i.e. before the candidate is appended).
//
// Results:
//   - VerdictRejected:      target[len(input)] != candidate.
//   - VerdictRoundComplete: candidate matched and fills the round.
//   - VerdictContinue:      candidate matched and presses remain.
//
// Judge assumes len(input) < len(target); the engine maintains that
// invariant by evaluating before every append.
func Judge(target, input []Signal, candidate Signal) Verdict {
	pos := len(input)
	if pos >= len(target) || target[pos] != candidate {
		return VerdictRejected
	}
	if pos+1 == len(target) {
		return VerdictRoundComplete
	}
	return VerdictContinue
}
