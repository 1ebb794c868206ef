package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDatasetWatcher_SignalsOnWrite tests change detection on the dataset file
func TestDatasetWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unicode_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("→|RIGHTWARDS ARROW|U+2192|Sm\n"), 0600))

	w, err := NewDatasetWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Give the watcher a moment to start before rewriting the file.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("←|LEFTWARDS ARROW|U+2190|Sm\n"), 0600))

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal received")
	}
}

// TestDatasetWatcher_IgnoresSiblingFiles tests unrelated files do not signal
func TestDatasetWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unicode_data.txt")
	require.NoError(t, os.WriteFile(path, []byte("x|X|U+0058|Lu\n"), 0600))

	w, err := NewDatasetWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0600))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change signal for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}
