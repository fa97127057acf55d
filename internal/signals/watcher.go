// Package signals provides out-of-band cancellation for running
// installations via files in a .configo/signals directory. An external
// process (or the user) drops a "cancel" file and the running install
// picks it up at the next step boundary.
package signals

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the signals directory of a .configo workspace dir.
type Watcher struct {
	configoDir string

	mu          sync.RWMutex
	cancelSeen  bool
	onCancel    func()
	cancelFired bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher rooted at workDir/.configo. The signals
// directory is created if missing. A failed fsnotify setup is not
// fatal: ShouldCancel still stats the file directly.
func NewWatcher(workDir string) (*Watcher, error) {
	configoDir := filepath.Join(workDir, ".configo")
	signalsDir := filepath.Join(configoDir, "signals")
	if err := os.MkdirAll(signalsDir, 0755); err != nil {
		return nil, err
	}

	w := &Watcher{
		configoDir: configoDir,
		done:       make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return w, nil
	}
	if err := watcher.Add(signalsDir); err != nil {
		watcher.Close()
		return w, nil
	}
	w.watcher = watcher

	go w.watch()

	return w, nil
}

// OnCancel registers a callback invoked once when a cancel signal
// arrives. Must be called before the signal fires to be effective.
func (w *Watcher) OnCancel(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCancel = fn
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != "cancel" {
				continue
			}
			if event.Op&fsnotify.Create == 0 && event.Op&fsnotify.Write == 0 {
				continue
			}
			w.markCancelled()
		case <-w.watcher.Errors:
			// Keep watching; ShouldCancel falls back to stat.
		}
	}
}

func (w *Watcher) markCancelled() {
	w.mu.Lock()
	w.cancelSeen = true
	fire := w.onCancel != nil && !w.cancelFired
	if fire {
		w.cancelFired = true
	}
	fn := w.onCancel
	w.mu.Unlock()

	if fire {
		fn()
	}
}

// ShouldCancel reports whether a cancel signal has been received. It
// also stats the signal file in case the watcher missed the event.
func (w *Watcher) ShouldCancel() bool {
	cancelPath := filepath.Join(w.configoDir, "signals", "cancel")
	if _, err := os.Stat(cancelPath); err == nil {
		w.markCancelled()
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cancelSeen
}

// SendCancel creates the cancel signal file.
func (w *Watcher) SendCancel() error {
	path := filepath.Join(w.configoDir, "signals", "cancel")
	return os.WriteFile(path, []byte(time.Now().Format(time.RFC3339)), 0644)
}

// Clear removes signal files and resets state.
func (w *Watcher) Clear() {
	w.mu.Lock()
	w.cancelSeen = false
	w.cancelFired = false
	w.mu.Unlock()

	os.Remove(filepath.Join(w.configoDir, "signals", "cancel"))
}

// Dir returns the path to the .configo directory.
func (w *Watcher) Dir() string {
	return w.configoDir
}

// Close shuts down the watcher.
func (w *Watcher) Close() {
	close(w.done)
	if w.watcher != nil {
		w.watcher.Close()
	}
}
