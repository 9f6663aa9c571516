package category

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harrison/filecat/internal/filelock"
	"github.com/harrison/filecat/internal/fileutil"
)

// SaveFile writes the assignments to a YAML file. The write is atomic and
// guarded by a file lock so concurrent invocations never interleave.
func SaveFile(path string, a *Assignments) error {
	data, err := yaml.Marshal(a.Entries())
	if err != nil {
		return fmt.Errorf("failed to marshal assignments: %w", err)
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write assignments file: %w", err)
	}
	return nil
}

// LoadFile reads an assignments YAML file into an Assignments constrained to
// the given set. Entries with an empty category are treated as unassigned
// seeds and skipped; an unrecognized category label is an error.
func LoadFile(path string, set *Set) (*Assignments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assignments file: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse assignments file: %w", err)
	}

	a := NewAssignments(set)
	for _, e := range entries {
		if e.Category == "" {
			continue
		}
		rec := fileutil.FileRecord{
			Name:        e.Name,
			Modified:    e.Modified,
			DisplayPath: e.Path,
		}
		if err := a.Assign(rec, e.Category); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, err)
		}
	}
	return a, nil
}

// SeedFile writes an assignments YAML file listing every discovered file
// with an empty category, ready for hand editing.
func SeedFile(path string, records []fileutil.FileRecord) error {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Entry{
			Path:     r.DisplayPath,
			Name:     r.Name,
			Modified: r.Modified,
		})
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal seed entries: %w", err)
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}
