// Package fileutil provides directory enumeration for the categorization
// pipeline. It walks a resolved directory tree and produces one record per
// regular file; directories are never emitted.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ModifiedUnavailable is the sentinel used when a file's last-modified time
// cannot be read. Such files still appear in listings and exports.
const ModifiedUnavailable = "Unavailable"

// modifiedLayout formats last-modified timestamps as YYYY-MM-DD.
const modifiedLayout = "2006-01-02"

// FileRecord describes one discovered regular file. Records are created once
// during enumeration and immutable thereafter.
type FileRecord struct {
	// Name is the base file name
	Name string

	// Modified is the last-modified date (YYYY-MM-DD) or ModifiedUnavailable
	Modified string

	// AbsolutePath is the absolute path on the resolved filesystem
	AbsolutePath string

	// DisplayPath is the path expressed relative to the user-facing root,
	// meaningful in the caller's environment (e.g. the mapped-drive form)
	DisplayPath string
}

// EnumerationError reports that the enumeration root itself was inaccessible.
// Per-file failures never produce this error; they degrade individual records.
type EnumerationError struct {
	Root string
	Err  error
}

// Error implements the error interface for EnumerationError.
func (e *EnumerationError) Error() string {
	return fmt.Sprintf("cannot enumerate %s: %v", e.Root, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *EnumerationError) Unwrap() error {
	return e.Err
}

// Enumerate walks the directory tree rooted at path and returns one record
// per regular file at any depth. It fails with *EnumerationError only when
// the root itself is inaccessible; a file whose metadata cannot be read gets
// the ModifiedUnavailable sentinel and enumeration continues.
//
// DisplayPath is computed by substituting displayRoot for the resolved path
// prefix, so downstream output shows paths meaningful to the caller.
//
// Records are sorted by absolute path. The source of record imposes no
// ordering; sorting is a deliberate choice for deterministic output.
func Enumerate(path, displayRoot string) ([]FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &EnumerationError{Root: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &EnumerationError{Root: path, Err: fmt.Errorf("not a directory")}
	}

	var records []FileRecord

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == path {
				return walkErr
			}
			// Unreadable subtree: skip and keep walking
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		absPath, err := filepath.Abs(p)
		if err != nil {
			absPath = p
		}

		records = append(records, FileRecord{
			Name:         d.Name(),
			Modified:     modifiedTime(d),
			AbsolutePath: absPath,
			DisplayPath:  displayPath(p, path, displayRoot),
		})
		return nil
	})
	if err != nil {
		return nil, &EnumerationError{Root: path, Err: err}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AbsolutePath < records[j].AbsolutePath
	})

	return records, nil
}

// modifiedTime reads a file's last-modified time, falling back to the
// unavailable sentinel when the metadata call fails (e.g. overlong path).
func modifiedTime(d fs.DirEntry) string {
	info, err := d.Info()
	if err != nil {
		return ModifiedUnavailable
	}
	return info.ModTime().Format(modifiedLayout)
}

// displayPath rewrites the resolved-path prefix back to the user-facing root.
func displayPath(p, resolvedRoot, displayRoot string) string {
	if displayRoot == "" || displayRoot == resolvedRoot {
		return p
	}
	if strings.HasPrefix(p, resolvedRoot) {
		return displayRoot + p[len(resolvedRoot):]
	}
	return p
}
