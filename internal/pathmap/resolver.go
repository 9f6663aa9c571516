// Package pathmap resolves user-supplied directory paths into accessible
// filesystem paths, translating mapped-drive notation into network share
// paths via a configured lookup table.
package pathmap

import (
	"fmt"
	"os"
	"strings"
)

// Mapping rewrites a mapped-drive prefix to a network share path.
type Mapping struct {
	// Prefix is the drive prefix, e.g. "Z:"
	Prefix string

	// Share replaces the prefix during resolution
	Share string
}

// PathError reports a path that could not be resolved to an accessible
// directory. Attempted carries the rewritten path when a drive mapping was
// applied, for diagnostics.
type PathError struct {
	Input     string
	Attempted string
	Reason    string
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	if e.Attempted != "" && e.Attempted != e.Input {
		return fmt.Sprintf("cannot resolve path %q (attempted %q): %s", e.Input, e.Attempted, e.Reason)
	}
	return fmt.Sprintf("cannot resolve path %q: %s", e.Input, e.Reason)
}

// Resolver translates user-facing paths into accessible filesystem paths.
// Resolution is a single deterministic pass with no environment probing;
// the mapping table is supplied by configuration.
type Resolver struct {
	mappings []Mapping
}

// NewResolver creates a Resolver with the given drive mappings.
// Mappings are consulted in order; the first matching prefix wins.
func NewResolver(mappings []Mapping) *Resolver {
	return &Resolver{mappings: mappings}
}

// Resolve validates and normalizes a user-supplied directory path.
//
// Recognized forms, checked in order:
//  1. UNC form (leading double separator) — accepted as-is if it exists
//  2. a configured mapped-drive prefix — rewritten to the share, then
//     validated for existence
//  3. a local path — accepted if it exists
//
// Any other shape, or a rewritten path that does not exist, fails with a
// *PathError. No retry is performed; callers re-invoke on new input.
func (r *Resolver) Resolve(userPath string) (string, error) {
	path := strings.TrimSpace(userPath)
	if path == "" {
		return "", &PathError{Input: userPath, Reason: "empty path"}
	}

	if isUNC(path) {
		if !exists(path) {
			return "", &PathError{Input: userPath, Attempted: path, Reason: "UNC path not accessible"}
		}
		return path, nil
	}

	if hasDrivePrefix(path) {
		for _, m := range r.mappings {
			if !strings.EqualFold(m.Prefix, path[:2]) {
				continue
			}
			rewritten := m.Share + normalizeSeparators(path[2:])
			if !exists(rewritten) {
				return "", &PathError{Input: userPath, Attempted: rewritten, Reason: "mapped share not accessible"}
			}
			return rewritten, nil
		}
		return "", &PathError{Input: userPath, Reason: fmt.Sprintf("drive %q has no configured mapping", path[:2])}
	}

	if exists(path) {
		return path, nil
	}

	return "", &PathError{Input: userPath, Attempted: path, Reason: "unrecognized or inaccessible path"}
}

// isUNC reports whether the path is in universal-naming-convention form,
// i.e. starts with a doubled separator of either flavor.
func isUNC(path string) bool {
	return strings.HasPrefix(path, `\\`) || strings.HasPrefix(path, "//")
}

// hasDrivePrefix reports whether the path starts with a drive letter and
// colon, e.g. "Z:".
func hasDrivePrefix(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// normalizeSeparators converts backslash separators in the drive-relative
// remainder to forward slashes so the rewritten path is usable on the host.
func normalizeSeparators(rest string) string {
	return strings.ReplaceAll(rest, `\`, "/")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
