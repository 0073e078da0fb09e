// apps/go-server/internal/signals/signals.go
//
// Provides the signal alphabet for the game engine.
//
// Responsibilities:
//   - Load the signal alphabet from an environment-provided file or fall
//     back to the embedded default (red, green, blue, yellow).
//   - Maintain a set for quick membership lookups.
//   - Supply utility functions like Alphabet, IsSignal, and Stats.
//
// Initialization behavior (Init):
//   1. If SIGNALS_FILE is set, load the alphabet from that file.
//   2. Otherwise, fall back to the embedded default from `signals.txt`.
//
// Environment variables:
//   SIGNALS_FILE=/path/to/signals.txt
//
// Constraints:
//   • Signals are single lowercase words (a–z), max 16 chars.
//   • The alphabet is normalized to lowercase and de-duplicated.
//   • Initialization is run once (sync.Once).

package signals

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/simon/apps/go-server/assets"
)

var (
	initOnce    sync.Once
	alphabet    []string            // ordered signal alphabet
	alphabetSet map[string]struct{} // membership set
	initialErr  error
)

// Init loads the signal alphabet exactly once.
// Returns an error if the alphabet ends up empty.
func Init() error {
	initOnce.Do(func() {
		var list []string

		if path := os.Getenv("SIGNALS_FILE"); path != "" {
			var err error
			list, err = readSignalFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			defaults, err := assets.SignalList()
			if err != nil {
				initialErr = err
				return
			}
			for _, s := range defaults {
				if isWord(s) {
					list = append(list, s)
				}
			}
		}

		alphabet, alphabetSet = dedupe(list)

		if len(alphabet) == 0 {
			initialErr = errors.New("signals: alphabet is empty")
		}
	})
	return initialErr
}

// readSignalFile loads one signal name per line from a file,
// lowercases, trims, and keeps only valid alphabetic words.
func readSignalFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(strings.ToLower(sc.Text()))
		if isWord(s) {
			out = append(out, s)
		}
	}
	return out, sc.Err()
}

// dedupe preserves first-seen order while dropping repeats.
func dedupe(list []string) ([]string, map[string]struct{}) {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, seen
}

// isWord reports whether s is 1–16 lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) == 0 || len(s) > 16 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Alphabet returns the ordered signal alphabet.
// The returned slice must not be mutated by callers.
func Alphabet() []string {
	return alphabet
}

// IsSignal reports whether s names a known signal.
func IsSignal(s string) bool {
	_, ok := alphabetSet[strings.ToLower(s)]
	return ok
}

// Stats returns the size of the loaded alphabet.
func Stats() int {
	return len(alphabet)
}
