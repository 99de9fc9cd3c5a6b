package preset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path, ok := <-w.Events:
		require.True(t, ok, "events closed")
		return path
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event")
	}
	return ""
}

func TestWatcher_Directory(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(zap.NewNop(), dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "vehicle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vehicle), 0o644))

	assert.Equal(t, path, waitEvent(t, w))
}

func TestWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vehicle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(vehicle), 0o644))

	w, err := NewWatcher(nil, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("joints: []"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(vehicle), 0o644))

	assert.Equal(t, path, waitEvent(t, w))
}

func TestWatcher_Close(t *testing.T) {
	w, err := NewWatcher(nil, t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed")
	}
}

func TestNewWatcher_MissingPath(t *testing.T) {
	_, err := NewWatcher(nil, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
