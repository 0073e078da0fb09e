// apps/go-server/internal/levels/levels.go
//
// Level configuration: maps a difficulty level to the number of rounds
// a player must clear to win.
//
// Responsibilities:
//   - Load the level table from an environment-provided file or fall
//     back to the embedded default {1→8, 2→14, 3→20, 4→31}.
//   - Resolve a level to its round count, with a descriptive error for
//     unknown levels (never a panic).
//
// Initialization behavior (Init):
//   1. If LEVELS_FILE is set, parse "level rounds" pairs from that file.
//   2. Otherwise, fall back to the embedded default from `levels.txt`.
//
// Environment variables:
//   LEVELS_FILE=/path/to/levels.txt
//
// Constraints:
//   • Levels are positive integers; round counts are > 0.
//   • Initialization is run once (sync.Once).

package levels

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/robalobadob/simon/apps/go-server/assets"
)

// DefaultLevel applies when a game is started without a level.
const DefaultLevel = 1

var (
	initOnce   sync.Once
	table      map[int]int // level -> rounds to win
	known      []int       // sorted level identifiers, for error text
	initialErr error
)

// Init loads the level table exactly once.
// Returns an error if the table ends up empty or the default level is missing.
func Init() error {
	initOnce.Do(func() {
		var lines []string

		if path := os.Getenv("LEVELS_FILE"); path != "" {
			var err error
			lines, err = readLevelFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			var err error
			lines, err = assets.LevelLines()
			if err != nil {
				initialErr = err
				return
			}
		}

		t, err := parseTable(lines)
		if err != nil {
			initialErr = err
			return
		}
		table = t

		known = known[:0]
		for lvl := range table {
			known = append(known, lvl)
		}
		sort.Ints(known)

		if len(table) == 0 {
			initialErr = errors.New("levels: level table is empty")
			return
		}
		if _, ok := table[DefaultLevel]; !ok {
			initialErr = fmt.Errorf("levels: default level %d missing from table", DefaultLevel)
		}
	})
	return initialErr
}

// readLevelFile loads non-empty, non-comment lines from a file.
func readLevelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// parseTable converts "level rounds" lines into the lookup table.
func parseTable(lines []string) (map[int]int, error) {
	t := make(map[int]int, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("levels: malformed line %q", line)
		}
		lvl, err := strconv.Atoi(fields[0])
		if err != nil || lvl <= 0 {
			return nil, fmt.Errorf("levels: bad level in line %q", line)
		}
		rounds, err := strconv.Atoi(fields[1])
		if err != nil || rounds <= 0 {
			return nil, fmt.Errorf("levels: bad round count in line %q", line)
		}
		t[lvl] = rounds
	}
	return t, nil
}

// Rounds resolves a level to the number of rounds required to win.
// Level 0 selects DefaultLevel. Unknown levels return a descriptive
// validation error so game start can abort cleanly.
func Rounds(level int) (int, error) {
	if level == 0 {
		level = DefaultLevel
	}
	if n, ok := table[level]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown level %d (valid levels are %s)", level, knownList())
}

// knownList renders the valid level identifiers for error text.
func knownList() string {
	parts := make([]string, len(known))
	for i, lvl := range known {
		parts[i] = strconv.Itoa(lvl)
	}
	return strings.Join(parts, ", ")
}

// Levels returns the sorted list of valid level identifiers.
func Levels() []int {
	return known
}
