package window

import "github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithGLVersion requests an OpenGL core profile context of the given version.
// Defaults to 4.1, the newest version available on every desktop platform.
//
// Parameters:
//   - major: major version
//   - minor: minor version
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithGLVersion(major, minor int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.glMajor = major
		w.glMinor = minor
	}
}

// WithVSync synchronizes buffer swaps with the display refresh.
//
// Parameters:
//   - enabled: true to wait for vertical blank
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithVSync(enabled bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.vsync = enabled
	}
}

// WithResizable controls whether the user can resize the window.
//
// Parameters:
//   - resizable: false to fix the window size
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithResizable(resizable bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.resizable = resizable
	}
}

// WithCursorCaptured hides and locks the cursor as soon as the window opens.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCursorCaptured() WindowBuilderOption {
	return func(w *engineWindow) {
		w.captured = true
	}
}

// WithEscapeCloses controls whether the escape key closes the window. Enabled by default.
//
// Parameters:
//   - enabled: false to deliver escape to the key callback instead
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithEscapeCloses(enabled bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.escapeCloses = enabled
	}
}

// WithClearColor sets the color used by Clear.
//
// Parameters:
//   - color: RGBA components in [0, 1]
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithClearColor(color [4]float32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.clearColor = color
	}
}

// WithClearMask sets the buffers Clear resets. Defaults to color and depth.
//
// Parameters:
//   - mask: a combination of backend.ColorBufferBit and backend.DepthBufferBit
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithClearMask(mask backend.Enum) WindowBuilderOption {
	return func(w *engineWindow) {
		w.clearMask = mask
	}
}

// WithBackend overrides the GL backend. Defaults to the OpenGL backend.
//
// Parameters:
//   - b: the backend
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithBackend(b backend.Backend) WindowBuilderOption {
	return func(w *engineWindow) {
		w.b = b
	}
}
