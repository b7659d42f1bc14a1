package stores

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// LogfileWatcher signals when a log file selected by the input pattern changes on disk.
// Only the pattern's static directory is watched, so changes below it are missed for "**" patterns.
type LogfileWatcher interface {
	// Changes delivers one value per burst of changes, after the debounce interval.
	Changes() <-chan struct{}
	// Errors delivers watcher errors; it is closed together with Changes.
	Errors() <-chan error
	Close() error
}

type logfileWatcher struct {
	watcher  *fsnotify.Watcher
	rootDir  string
	pattern  glob.Glob
	debounce time.Duration

	changes chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewLogfileWatcher watches rootDir/<static prefix of pattern>; the directory must exist.
func NewLogfileWatcher(rootDir, pattern string, debounce time.Duration) (LogfileWatcher, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLogfilePattern, pattern, err)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Join(absRootDir, filepath.FromSlash(staticPrefix(pattern)))
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	w := &logfileWatcher{
		watcher:  watcher,
		rootDir:  absRootDir,
		pattern:  g,
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.watchLoop()
	return w, nil
}

func (w *logfileWatcher) Changes() <-chan struct{} { return w.changes }

func (w *logfileWatcher) Errors() <-chan error { return w.errors }

func (w *logfileWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *logfileWatcher) watchLoop() {
	defer w.wg.Done()
	defer close(w.changes)
	defer close(w.errors)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&watchedOps == 0 || !w.matches(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default: // a change is already pending
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

// matches reports whether an absolute event path is a key selected by the pattern.
func (w *logfileWatcher) matches(name string) bool {
	rel, err := filepath.Rel(w.rootDir, name)
	if err != nil {
		return false
	}
	return w.pattern.Match(filepath.ToSlash(rel))
}
