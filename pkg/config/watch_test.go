package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRunsUntilStopped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: 3000\n"), 0o644))
	t.Setenv("EASEBOARD_CONFIG_PATH", dir)
	require.NoError(t, Reload())

	stop := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- Watch(stop, nil) }()

	// Watch blocks for the life of the watcher, callers must give it its
	// own goroutine
	select {
	case err := <-done:
		t.Fatalf("watch returned before stop was closed: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(stop)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after stop was closed")
	}
}

func TestWatchReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("port: 3000\n"), 0o644))
	t.Setenv("EASEBOARD_CONFIG_PATH", dir)
	require.NoError(t, Reload())

	stop := make(chan struct{})
	defer close(stop)

	reloaded := make(chan *Settings, 1)
	go func() {
		_ = Watch(stop, func(updated *Settings) {
			select {
			case reloaded <- updated:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("port: 4000\n"), 0o644))

	select {
	case updated := <-reloaded:
		assert.Equal(t, 4000, updated.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}
}
