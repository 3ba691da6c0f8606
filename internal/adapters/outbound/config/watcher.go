package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/abdidvp/ftf/internal/domain"
)

// Watcher reloads a config file when it changes on disk.
type Watcher struct {
	path    string
	loader  domain.ConfigLoader
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher watches path, or DefaultPath when path is empty. The file may
// not exist yet but its directory must.
func NewWatcher(path string, loader domain.ConfigLoader, logger *zap.Logger) (*Watcher, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Editors often replace the file, so the directory is watched.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, loader: loader, logger: logger, watcher: fw}, nil
}

// Run blocks until ctx is done, calling onChange with every config that
// loads and validates after a change. Invalid edits are logged and skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(domain.Config)) error {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := w.loader.Load(w.path)
			if err != nil {
				w.logger.Warn("ignoring config change", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Debug("config reloaded", zap.String("path", w.path), zap.Stringer("op", event.Op))
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}
