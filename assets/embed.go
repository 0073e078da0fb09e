package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed signals.txt levels.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
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
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// SignalList returns the default signal alphabet, one signal per line.
func SignalList() ([]string, error) {
	return readLines("signals.txt")
}

// LevelLines returns the default level table as raw "level rounds" lines.
func LevelLines() ([]string, error) {
	return readLines("levels.txt")
}
