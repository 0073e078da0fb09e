package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/robalobadob/simon/apps/go-server/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// StepIndex returns a deterministic alphabet index for one step of the
// daily sequence using HMAC(salt, YYYY-MM-DD|step) % alphabetLen.
// Every player therefore reproduces the same target sequence for a
// given date.
func StepIndex(dateKey, salt string, step, alphabetLen int) int {
	if alphabetLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dateKey + "|" + strconv.Itoa(step)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(alphabetLen))
}

// SequencePicker adapts StepIndex into a game.Picker: each call
// resolves the next step of the date's sequence.
func SequencePicker(dateKey, salt string) game.Picker {
	step := 0
	return func(n int) int {
		i := StepIndex(dateKey, salt, step, n)
		step++
		return i
	}
}
