package filelock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "artifact.xlsx")

	require.NoError(t, AtomicWrite(path, []byte("payload")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAtomicWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, AtomicWrite(path, []byte("first")))
	require.NoError(t, AtomicWrite(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLockAndWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "assignments.yaml")

	require.NoError(t, LockAndWrite(path, []byte("entries: []")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "entries: []", string(data))
}

func TestTryLockContention(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, "out.lock")

	first := New(lockPath)
	require.NoError(t, first.Lock())
	defer first.Unlock()

	second := New(lockPath)
	acquired, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "lock held elsewhere must not be acquired")

	require.NoError(t, first.Unlock())
	acquired, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	second.Unlock()
}
