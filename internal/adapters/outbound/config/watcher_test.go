package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	appconfig "github.com/abdidvp/ftf/internal/adapters/outbound/config"
	"github.com/abdidvp/ftf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("global:\n  limit: 1\n"), 0644))

	w, err := appconfig.NewWatcher(path, appconfig.New(), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan domain.Config, 16)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(c domain.Config) { changes <- c }) }()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("global:\n  limit: 5\n"), 0644))

	deadline := time.After(5 * time.Second)
	for got := false; !got; {
		select {
		case c := <-changes:
			got = c.Global.Limit == 5
		case <-deadline:
			t.Fatal("config change not observed")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	w, err := appconfig.NewWatcher(path, appconfig.New(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan domain.Config, 16)
	go func() { _ = w.Run(ctx, func(c domain.Config) { changes <- c }) }()

	require.NoError(t, os.WriteFile(path, []byte("global:\n  limit: -1\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("global:\n  limit: 2\n"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			require.GreaterOrEqual(t, c.Global.Limit, 0)
			if c.Global.Limit == 2 {
				return
			}
		case <-deadline:
			t.Fatal("valid config not observed")
		}
	}
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := appconfig.NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), appconfig.New(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching")
}
