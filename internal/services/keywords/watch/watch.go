// Package watch reloads keywords when the pack file changes on disk
package watch

import (
	"context"
	"path/filepath"
	"time"

	"wordguard/internal/platform/logger"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the file must stay quiet before a reload fires
const DefaultDebounce = 250 * time.Millisecond

// File watches one file. Editors often replace a file through rename, so the parent
// directory is watched and events are filtered by name
type File struct {
	Path     string
	Debounce time.Duration
	Log      *logger.Logger
}

// Run calls onChange once per burst of writes, creates, renames or removals of the file until
// ctx is done. It returns after setup fails or ctx ends
func (f File) Run(ctx context.Context, onChange func(context.Context)) error {
	abs, err := filepath.Abs(f.Path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	debounce := f.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	log := f.Log
	if log == nil {
		log = logger.Named("keywords.watch")
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !relevant(ev) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Str("path", abs).Msg("watch error")
		case <-timer.C:
			log.Info().Str("path", abs).Msg("keyword file changed")
			onChange(ctx)
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
