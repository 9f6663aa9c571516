// Package category implements the categorization core: the fixed category
// set, user-populated assignments, and the grouping stage that feeds every
// exporter.
package category

import (
	"fmt"
	"strings"
)

// InvalidCategoryError reports an attempt to assign a label outside the
// configured category set.
type InvalidCategoryError struct {
	Category string
	Valid    []string
}

// Error implements the error interface for InvalidCategoryError.
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q (valid: %s)", e.Category, strings.Join(e.Valid, ", "))
}

// Set is the fixed, ordered category set. The order of labels is canonical:
// grouping and every exporter emit sections in exactly this order, regardless
// of assignment arrival order.
type Set struct {
	labels []string
	index  map[string]int
}

// NewSet creates a Set from an ordered list of labels.
// Labels must be non-empty and unique.
func NewSet(labels []string) (*Set, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("category set must not be empty")
	}
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("category labels must not be blank")
		}
		if _, dup := index[label]; dup {
			return nil, fmt.Errorf("duplicate category %q", label)
		}
		index[label] = i
	}
	return &Set{labels: labels, index: index}, nil
}

// MustNewSet is NewSet for statically known label lists; it panics on error.
func MustNewSet(labels []string) *Set {
	s, err := NewSet(labels)
	if err != nil {
		panic(err)
	}
	return s
}

// Labels returns the canonical label order. The returned slice is a copy.
func (s *Set) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Contains reports whether label is a member of the set.
func (s *Set) Contains(label string) bool {
	_, ok := s.index[label]
	return ok
}

// Len returns the number of categories in the set.
func (s *Set) Len() int {
	return len(s.labels)
}
