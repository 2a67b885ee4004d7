package loader

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// ErrLoaderClosed is returned by LoadImages after Close has been called.
var ErrLoaderClosed = errors.New("loader is closed")

// loader is the implementation of the Loader interface.
type loader struct {
	mu *sync.Mutex

	workers     int
	queueSize   int
	idleTimeout time.Duration

	pool   worker.DynamicWorkerPool
	closed bool

	decode func(path string, flip bool) (*Image, error)
}

// Loader decodes batches of image files in parallel on a long-lived worker pool.
// Decoding is CPU-only; the returned images are uploaded to the GPU by the caller on
// the render thread.
type Loader interface {
	// LoadImages decodes every path concurrently and returns the images in input order.
	// If any image fails, the first failure in input order is returned and no images are.
	//
	// Parameters:
	//   - paths: image file paths
	//   - flip: whether to flip every image vertically
	//
	// Returns:
	//   - []*Image: decoded images, one per path
	//   - error: the first decode error, or ErrLoaderClosed
	LoadImages(paths []string, flip bool) ([]*Image, error)

	// Workers returns the maximum number of concurrent decodes.
	//
	// Returns:
	//   - int: the worker count
	Workers() int

	// Close stops the worker pool. Subsequent LoadImages calls fail with ErrLoaderClosed.
	// Safe to call more than once.
	Close()
}

var _ Loader = &loader{}

// NewLoader creates a Loader backed by a worker pool.
// Worker count defaults to one less than the number of CPUs (minimum 1).
//
// Parameters:
//   - options: functional options to configure the loader
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:          &sync.Mutex{},
		workers:     max(runtime.NumCPU()-1, 1),
		queueSize:   64,
		idleTimeout: time.Second,
		decode:      LoadImage,
	}

	for _, option := range options {
		option(l)
	}

	l.pool = worker.NewDynamicWorkerPool(l.workers, l.queueSize, l.idleTimeout)
	return l
}

func (l *loader) LoadImages(paths []string, flip bool) ([]*Image, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrLoaderClosed
	}
	l.mu.Unlock()

	images := make([]*Image, len(paths))
	errs := make([]error, len(paths))

	// The pool's Wait returns once the queue drains, before in-flight tasks finish, so a
	// WaitGroup is the batch barrier.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		l.pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: path,
			Do: func() (res any, err error) {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						errs[i] = fmt.Errorf("decoding %s panicked: %v", path, r)
					}
				}()
				images[i], errs[i] = l.decode(path, flip)
				return images[i], errs[i]
			},
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return images, nil
}

func (l *loader) Workers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.workers
}

func (l *loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.pool.Stop()
}
