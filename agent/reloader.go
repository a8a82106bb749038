package agent

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nstehr/pitchside/tactics"
)

// ProfileLoader reads a tactical profile from a config file.
type ProfileLoader func(path string) (tactics.Profile, error)

// Reloader runs in the background, watching the config file and swapping
// the engine's profile whenever it changes. A bad edit is logged and the
// running profile stays in place.
type Reloader struct {
	engine   *tactics.Engine
	path     string
	load     ProfileLoader
	debounce time.Duration
	swapped  chan string
}

func NewReloader(engine *tactics.Engine, path string, load ProfileLoader) *Reloader {
	return &Reloader{
		engine:   engine,
		path:     filepath.Clean(path),
		load:     load,
		debounce: 250 * time.Millisecond,
	}
}

// Start watches until ctx is cancelled. The directory is watched rather than
// the file so editors that replace the file on save are still seen.
func (r *Reloader) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("watch %s: %w", r.path, err)
	}
	slog.Info("profile reloader started", "path", r.path)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("profile reloader stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != r.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Saves often arrive as a burst of events.
			timer.Reset(r.debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("profile watcher error", "error", err)
		case <-timer.C:
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	profile, err := r.load(r.path)
	if err != nil {
		slog.Error("profile reload failed", "path", r.path, "error", err)
		return
	}
	if err := r.engine.Swap(profile); err != nil {
		slog.Error("profile swap failed, keeping current profile", "profile", profile.Name, "error", err)
		return
	}
	if r.swapped != nil {
		select {
		case r.swapped <- profile.Name:
		default:
		}
	}
}
