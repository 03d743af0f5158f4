package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vk/hyperlayers/internal/ctxlog"
)

// DefaultDelay is how long the watcher waits for events to settle.
const DefaultDelay = 200 * time.Millisecond

const relevantOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to the .hcl files under a root path.
type Watcher struct {
	fsw       *fsnotify.Watcher
	delay     time.Duration
	file      string // set when root is a single file
	extension string
}

// New watches root, which is either a directory (watched recursively) or a
// single file. Files are watched through their directory because editors
// commonly replace a file instead of writing it in place.
func New(root string, delay time.Duration) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", root, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start file watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, delay: delay, extension: ".hcl"}
	if info.IsDir() {
		err = w.addRecursive(absRoot)
	} else {
		w.file = absRoot
		err = fsw.Add(filepath.Dir(absRoot))
	}
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", root, err)
	}
	return w, nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run calls onChange after every settled burst of relevant events until ctx
// is cancelled. Watch errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	logger := ctxlog.FromContext(ctx)

	timer := time.NewTimer(w.delay)
	timer.Stop()
	var settled <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) && w.file == "" {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(ev.Name); err != nil {
						logger.Warn("Failed to watch new directory.", "path", ev.Name, "error", err)
					}
				}
			}
			if !w.relevant(ev) {
				continue
			}
			logger.Debug("Layer file changed.", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.delay)
			settled = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error.", "error", err)

		case <-settled:
			settled = nil
			onChange(ctx)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&relevantOps == 0 {
		return false
	}
	if w.file != "" {
		return filepath.Clean(ev.Name) == w.file
	}
	return filepath.Ext(ev.Name) == w.extension
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.fsw.Add(path)
	})
}
