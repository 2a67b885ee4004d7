package shader

// WatcherBuilderOption is a functional option for configuring a Watcher via NewWatcher.
type WatcherBuilderOption func(*watcher)

// WithReloadCallback registers a function called after every reload attempt made by Apply.
// err is nil when the shader reloaded successfully.
//
// Parameters:
//   - callback: function receiving the shader and the reload result
//
// Returns:
//   - WatcherBuilderOption: option function to apply
func WithReloadCallback(callback func(s Shader, err error)) WatcherBuilderOption {
	return func(w *watcher) {
		w.onReload = callback
	}
}
