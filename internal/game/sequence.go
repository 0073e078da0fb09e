// apps/go-server/internal/game/sequence.go
//
// Sequence generator: draws one uniformly-chosen Signal from the
// alphabet. Kept separate from the state machine so it can be tested
// in isolation and swapped for a deterministic picker (daily mode).

package game

import (
	"crypto/rand"
	"math/big"
)

// NextSignal returns one uniformly-chosen Signal from alphabet using
// pick (crypto/rand when pick is nil). The empty alphabet is handled
// defensively: it returns the zero Signal and false, and callers must
// not append anything to the target sequence.
func NextSignal(pick Picker, alphabet []Signal) (Signal, bool) {
	if len(alphabet) == 0 {
		return "", false
	}
	if pick == nil {
		pick = cryptoPick
	}
	i := pick(len(alphabet))
	if i < 0 || i >= len(alphabet) {
		return "", false
	}
	return alphabet[i], true
}

// cryptoPick chooses an index via crypto/rand.
func cryptoPick(n int) int {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}
