package loader

import "time"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithWorkers sets the maximum number of images decoded concurrently.
// Values < 1 are ignored.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.workers = n
		}
	}
}

// WithQueueSize sets the capacity of the pending task queue.
// Values < 1 are ignored.
//
// Parameters:
//   - n: the queue capacity
//
// Returns:
//   - LoaderBuilderOption: a function that applies the queue size to a loader
func WithQueueSize(n int) LoaderBuilderOption {
	return func(l *loader) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// WithIdleTimeout sets how long an idle worker waits before it may be reclaimed.
//
// Parameters:
//   - d: the idle timeout
//
// Returns:
//   - LoaderBuilderOption: a function that applies the idle timeout to a loader
func WithIdleTimeout(d time.Duration) LoaderBuilderOption {
	return func(l *loader) {
		l.idleTimeout = d
	}
}

// WithDecoder replaces the function used to decode a single image file.
// The default is LoadImage.
//
// Parameters:
//   - decode: the decode function
//
// Returns:
//   - LoaderBuilderOption: a function that applies the decoder to a loader
func WithDecoder(decode func(path string, flip bool) (*Image, error)) LoaderBuilderOption {
	return func(l *loader) {
		if decode != nil {
			l.decode = decode
		}
	}
}
