// Package scores keeps the local high-score table: the top 10 results,
// stored as JSON in the user's config directory.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/kirsle/configdir"
)

const (
	maxEntries = 10
	fileName   = "scores.json"
)

type Entry struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Lines int       `json:"lines"`
	Level int       `json:"level"`
	When  time.Time `json:"when"`
}

// Table holds the ranked entries, best first. Ties keep their insertion
// order.
type Table struct {
	Entries []Entry

	path string
}

// Load reads the score table from the default config directory,
// creating the directory if needed. A missing file is an empty table.
func Load() (*Table, error) {
	dir := configdir.LocalConfig("tetris")
	if err := configdir.MakePath(dir); err != nil {
		return nil, fmt.Errorf("unable to create config dir: %w", err)
	}
	return LoadFrom(dir)
}

// LoadFrom reads the score table from the given directory.
func LoadFrom(dir string) (*Table, error) {
	t := &Table{path: filepath.Join(dir, fileName)}
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return nil, fmt.Errorf("unable to read %s: %w", t.path, err)
	}
	if err := json.Unmarshal(data, &t.Entries); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", t.path, err)
	}
	return t, nil
}

// Insert ranks a new result into the table, dropping whatever falls off
// the bottom, and returns the entry. A result that doesn't make the top
// 10 is returned but not kept.
func (t *Table) Insert(name string, score, lines, level int) Entry {
	entry := Entry{
		ID:    uuid.New().String(),
		Name:  name,
		Score: score,
		Lines: lines,
		Level: level,
		When:  time.Now(),
	}
	t.Entries = append(t.Entries, entry)
	// stable: equal scores stay in insertion order
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Score > t.Entries[j].Score
	})
	if len(t.Entries) > maxEntries {
		t.Entries = t.Entries[:maxEntries]
	}
	return entry
}

// Best returns the highest score on the table, 0 when it is empty.
func (t *Table) Best() int {
	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[0].Score
}

// Save writes the table back to the file it was loaded from.
func (t *Table) Save() error {
	data, err := json.MarshalIndent(t.Entries, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode scores: %w", err)
	}
	if err := os.WriteFile(t.path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", t.path, err)
	}
	return nil
}
