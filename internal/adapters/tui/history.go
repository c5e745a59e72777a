package tui

import (
	"fmt"
	"os"
	"strings"
)

// maxHistory caps how many entries the history file keeps.
const maxHistory = 1000

// LoadHistory reads the command history file, one command per line.
func LoadHistory(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// SaveHistory writes the command history, most recent last, keeping at most
// maxHistory entries.
func SaveHistory(path string, entries []string) error {
	if len(entries) > maxHistory {
		entries = entries[len(entries)-maxHistory:]
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
