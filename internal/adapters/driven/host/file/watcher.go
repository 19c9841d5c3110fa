package file

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/gridpad-labs/gridpad-cli/internal/logger"
)

// notifyInterval bounds how often external-change notifications are
// delivered; atomic-rename saves emit several filesystem events each.
const notifyInterval = 500 * time.Millisecond

// watcher wraps fsnotify for a single file. The data directory is
// watched rather than the file itself so rename-based saves keep
// notifying after the inode changes.
type watcher struct {
	path    string
	fs      *fsnotify.Watcher
	limiter *rate.Limiter
}

// newWatcher creates a watcher for the given file path.
func newWatcher(path string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}
	return &watcher{
		path:    path,
		fs:      fs,
		limiter: rate.NewLimiter(rate.Every(notifyInterval), 1),
	}, nil
}

// Run starts delivering change notifications until the context is
// cancelled. The returned channel is closed on exit.
func (w *watcher) Run(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if !w.limiter.Allow() {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
					// A notification is already pending.
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				logger.Warn("value watcher: %v", err)
			}
		}
	}()

	return out
}

// Close stops the underlying filesystem watcher.
func (w *watcher) Close() error {
	return w.fs.Close()
}
