package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func awaitUpdate(t *testing.T, w *Watcher) *Config {
	t.Helper()
	select {
	case cfg := <-w.Updates():
		return cfg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config update")
		return nil
	}
}

func TestWatcher_Reload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "theme: light\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { require.NoError(t, w.Close()) }()

	writeConfig(t, path, "theme: dark\n")

	cfg := awaitUpdate(t, w)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestWatcher_BadReloadIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "theme: light\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond

	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	defer func() { require.NoError(t, w.Close()) }()

	// A broken file produces no update; the next good write does.
	writeConfig(t, path, "theme: [unclosed")
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, "theme: dark\n")

	cfg := awaitUpdate(t, w)
	assert.Equal(t, "dark", cfg.Theme)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "theme: light\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	w.debounce = 50 * time.Millisecond

	require.NoError(t, w.Start(context.Background()))
	defer func() { require.NoError(t, w.Close()) }()

	writeConfig(t, filepath.Join(dir, "other.yaml"), "theme: dark\n")

	select {
	case cfg := <-w.Updates():
		t.Fatalf("unexpected update: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StartTwiceAndClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "theme: light\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Close())
}
