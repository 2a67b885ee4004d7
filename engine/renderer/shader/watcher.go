package shader

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// watcher is the implementation of the Watcher interface.
type watcher struct {
	mu *sync.Mutex

	fs *fsnotify.Watcher

	// byPath maps a cleaned absolute source path to the shaders built from it.
	byPath map[string][]Shader
	// dirs counts watched shader files per directory.
	dirs map[string]int

	pending map[Shader]struct{}
	order   []Shader

	done chan struct{}
	wg   sync.WaitGroup

	onReload func(s Shader, err error)
}

// Watcher reloads shaders when their source files change on disk.
// File events are collected on a background goroutine; the reloads themselves only run
// when Apply is called, which must happen on the GL context thread.
type Watcher interface {
	// Watch registers a shader. Both of its source files and every file they included
	// on the last Load are watched.
	//
	// Parameters:
	//   - s: the shader to reload on change
	//
	// Returns:
	//   - error: error if a source directory cannot be watched
	Watch(s Shader) error

	// Unwatch stops reloading a shader. Pending reloads for it are dropped.
	//
	// Parameters:
	//   - s: the shader to forget
	Unwatch(s Shader)

	// Pending returns the number of shaders waiting for Apply.
	//
	// Returns:
	//   - int: the number of queued reloads
	Pending() int

	// Apply reloads every shader whose sources changed since the last call.
	// A failed reload is logged and leaves that shader invalid until its sources are fixed.
	//
	// Returns:
	//   - int: the number of shaders that reloaded successfully
	Apply() int

	// Close stops watching and waits for the event goroutine to exit.
	//
	// Returns:
	//   - error: error from the underlying file watcher
	Close() error
}

var _ Watcher = &watcher{}

// NewWatcher starts a file watcher for shader hot reload.
//
// Parameters:
//   - options: functional options to configure the watcher
//
// Returns:
//   - Watcher: the running watcher
//   - error: error if the OS file watcher cannot be created
func NewWatcher(options ...WatcherBuilderOption) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &watcher{
		mu:      &sync.Mutex{},
		fs:      fw,
		byPath:  make(map[string][]Shader),
		dirs:    make(map[string]int),
		pending: make(map[Shader]struct{}),
		done:    make(chan struct{}),
	}
	for _, option := range options {
		option(w)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *watcher) Watch(s Shader) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := append([]string{s.VertexPath(), s.FragmentPath()}, s.Includes()...)
	for _, p := range paths {
		path, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		path = filepath.Clean(path)

		// Editors often replace files instead of writing them, so the directory is watched.
		dir := filepath.Dir(path)
		if w.dirs[dir] == 0 {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		w.dirs[dir]++
		w.byPath[path] = append(w.byPath[path], s)
	}
	return nil
}

func (w *watcher) Unwatch(s Shader) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, shaders := range w.byPath {
		kept := shaders[:0]
		for _, candidate := range shaders {
			if candidate == s {
				dir := filepath.Dir(path)
				w.dirs[dir]--
				if w.dirs[dir] <= 0 {
					delete(w.dirs, dir)
					_ = w.fs.Remove(dir)
				}
				continue
			}
			kept = append(kept, candidate)
		}
		if len(kept) == 0 {
			delete(w.byPath, path)
		} else {
			w.byPath[path] = kept
		}
	}

	if _, ok := w.pending[s]; ok {
		delete(w.pending, s)
		for i, p := range w.order {
			if p == s {
				w.order = append(w.order[:i], w.order[i+1:]...)
				break
			}
		}
	}
}

func (w *watcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.order)
}

func (w *watcher) Apply() int {
	w.mu.Lock()
	queued := w.order
	w.order = nil
	clear(w.pending)
	w.mu.Unlock()

	reloaded := 0
	for _, s := range queued {
		err := s.Load()
		if err == nil {
			reloaded++
			log.Printf("[Shader] reloaded (%s, %s)", s.VertexPath(), s.FragmentPath())
			// The include set may have changed with the edit.
			w.Unwatch(s)
			if werr := w.Watch(s); werr != nil {
				log.Printf("[Shader] %v", werr)
			}
		}
		if w.onReload != nil {
			w.onReload(s, err)
		}
	}
	return reloaded
}

func (w *watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

// run drains file events until Close. Write, create and rename events on a watched
// source mark every shader built from it as pending.
func (w *watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.markChanged(filepath.Clean(ev.Name))
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("[Shader] watcher error: %v", err)
		}
	}
}

func (w *watcher) markChanged(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, s := range w.byPath[path] {
		if _, queued := w.pending[s]; queued {
			continue
		}
		w.pending[s] = struct{}{}
		w.order = append(w.order, s)
	}
}
