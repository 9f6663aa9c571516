package category

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/harrison/filecat/internal/fileutil"
)

// Entry is one categorized file. Entries are keyed by display path rather
// than bare name so files with identical names in different subdirectories
// never collide.
type Entry struct {
	Path     string `yaml:"path"`
	Name     string `yaml:"name"`
	Modified string `yaml:"modified"`
	Category string `yaml:"category"`
}

// Assignments is the user-populated mapping from file to category.
// Iteration order is the order in which paths were first assigned;
// reassigning a path's category keeps its original position.
type Assignments struct {
	set     *Set
	order   []string
	entries map[string]Entry
}

// NewAssignments creates an empty assignment map over the given category set.
func NewAssignments(set *Set) *Assignments {
	return &Assignments{
		set:     set,
		entries: make(map[string]Entry),
	}
}

// Set returns the category set the assignments are constrained to.
func (a *Assignments) Set() *Set {
	return a.set
}

// Assign records the category for a discovered file. The category must be a
// member of the set; anything else fails with *InvalidCategoryError.
func (a *Assignments) Assign(rec fileutil.FileRecord, category string) error {
	if !a.set.Contains(category) {
		return &InvalidCategoryError{Category: category, Valid: a.set.Labels()}
	}
	if _, exists := a.entries[rec.DisplayPath]; !exists {
		a.order = append(a.order, rec.DisplayPath)
	}
	a.entries[rec.DisplayPath] = Entry{
		Path:     rec.DisplayPath,
		Name:     rec.Name,
		Modified: rec.Modified,
		Category: category,
	}
	return nil
}

// Get returns the entry for a path, if assigned.
func (a *Assignments) Get(path string) (Entry, bool) {
	e, ok := a.entries[path]
	return e, ok
}

// Len returns the number of assigned files.
func (a *Assignments) Len() int {
	return len(a.order)
}

// Entries returns all assignments in insertion order.
func (a *Assignments) Entries() []Entry {
	out := make([]Entry, 0, len(a.order))
	for _, path := range a.order {
		out = append(out, a.entries[path])
	}
	return out
}

// Reconcile drops every assignment whose path is absent from the given
// enumeration pass, returning the dropped paths. This keeps the invariant
// that everything grouped and exported originated from the current pass.
func (a *Assignments) Reconcile(records []fileutil.FileRecord) []string {
	known := make(map[string]bool, len(records))
	for _, r := range records {
		known[r.DisplayPath] = true
	}

	var dropped []string
	kept := a.order[:0]
	for _, path := range a.order {
		if known[path] {
			kept = append(kept, path)
			continue
		}
		delete(a.entries, path)
		dropped = append(dropped, path)
	}
	a.order = kept
	return dropped
}

// ContentHash returns a stable SHA-256 hash of the assignment content.
// Exports are cached under this key: any change to the mapping — a new file,
// a different category, a different order — produces a different hash.
func (a *Assignments) ContentHash() string {
	var b strings.Builder
	for _, path := range a.order {
		e := a.entries[path]
		fmt.Fprintf(&b, "%s\x1f%s\x1f%s\x1f%s\x1e", e.Path, e.Name, e.Modified, e.Category)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
