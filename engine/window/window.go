package window

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
)

// Window owns the platform window, its OpenGL context and keyboard/mouse input.
// Every method must be called from the thread that created the window.
type Window interface {
	// SetKeyCallback sets the callback for key press and release events.
	// Repeats are reported as presses.
	//
	// Parameters:
	//   - callback: function receiving the key code and whether it is down
	SetKeyCallback(callback func(key int, pressed bool))

	// SetCursorCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in screen coordinates
	SetCursorCallback(callback func(x, y float64))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the vertical scroll offset (positive = up)
	SetScrollCallback(callback func(yOffset float64))

	// SetResizeCallback sets the function called after the framebuffer is resized.
	// The viewport has already been updated when it runs.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// KeyPressed reports whether a key is currently held.
	//
	// Parameters:
	//   - key: the key code
	//
	// Returns:
	//   - bool: true while the key is down
	KeyPressed(key int) bool

	// SetCursorCaptured hides and locks the cursor for mouse look, or releases it.
	//
	// Parameters:
	//   - captured: true to capture the cursor
	SetCursorCaptured(captured bool)

	// Valid reports whether the window is open and has a backend to draw with.
	//
	// Returns:
	//   - bool: false before NewWindow succeeds and after Close
	Valid() bool

	// ShouldClose returns true once the user or RequestClose asked the window to close.
	//
	// Returns:
	//   - bool: true if the render loop should stop
	ShouldClose() bool

	// RequestClose flags the window to close at the end of the current frame.
	RequestClose()

	// Clear clears the color and depth buffers with the configured clear color.
	Clear()

	// SetClearColor changes the color used by Clear.
	//
	// Parameters:
	//   - color: RGBA components in [0, 1]
	SetClearColor(color [4]float32)

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// PollEvents processes pending window events and dispatches callbacks.
	PollEvents()

	// Backend returns the GL backend bound to this window's context.
	//
	// Returns:
	//   - backend.Backend: the backend
	Backend() backend.Backend

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// AspectRatio returns width divided by height, or 1 while the window is minimized.
	//
	// Returns:
	//   - float32: the framebuffer aspect ratio
	AspectRatio() float32

	// Close destroys the window and terminates the platform layer.
	//
	// Returns:
	//   - error: error if the window is not initialized
	Close() error
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	mu *sync.Mutex

	// title is the window title displayed in the title bar.
	title string

	// width and height are the framebuffer dimensions in pixels.
	width  int
	height int

	glMajor   int
	glMinor   int
	vsync     bool
	resizable bool

	// escapeCloses makes the escape key request close instead of reaching the key callback.
	escapeCloses bool

	captured   bool
	clearColor [4]float32
	clearMask  backend.Enum

	b backend.Backend

	// keys holds the keys currently down.
	keys map[int]bool

	closeRequested bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onKey    func(key int, pressed bool)
	onCursor func(x, y float64)
	onScroll func(yOffset float64)
	onResize func(width, height int)
}

var _ Window = &engineWindow{}

// NewWindow creates the window, makes its OpenGL core profile context current on the
// calling thread and loads the GL function pointers. The calling goroutine is locked to
// its OS thread.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
//   - error: error if the platform layer, the window or the GL context cannot be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("failed to create platform window: %w", err)
	}
	if w.b == nil {
		w.b = backend.NewGLBackend()
	}
	log.Printf("[Window] OpenGL %s", w.b.Version())

	w.b.Enable(backend.DepthTest)
	w.b.Viewport(0, 0, int32(w.width), int32(w.height))
	return w, nil
}

// newEngineWindow applies defaults and options without touching the platform layer.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		mu:           &sync.Mutex{},
		title:        "oxy-gl",
		width:        1024,
		height:       768,
		glMajor:      4,
		glMinor:      1,
		resizable:    true,
		escapeCloses: true,
		clearColor:   [4]float32{0.16, 0.24, 0.32, 1},
		clearMask:    backend.ColorBufferBit | backend.DepthBufferBit,
		keys:         make(map[int]bool),
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, "oxy-gl")
	return w
}

func (w *engineWindow) SetKeyCallback(callback func(key int, pressed bool)) {
	w.onKey = callback
}

func (w *engineWindow) SetCursorCallback(callback func(x, y float64)) {
	w.onCursor = callback
}

func (w *engineWindow) SetScrollCallback(callback func(yOffset float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) KeyPressed(key int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keys[key]
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	w.captured = captured
	platformSetCursorCaptured(w, captured)
}

func (w *engineWindow) Valid() bool {
	return w.internalWindow != nil && w.b != nil
}

func (w *engineWindow) ShouldClose() bool {
	w.mu.Lock()
	requested := w.closeRequested
	w.mu.Unlock()
	return requested || platformShouldClose(w)
}

func (w *engineWindow) RequestClose() {
	w.mu.Lock()
	w.closeRequested = true
	w.mu.Unlock()
	platformRequestClose(w)
}

func (w *engineWindow) Clear() {
	if w.b == nil {
		return
	}
	c := w.clearColor
	w.b.ClearColor(c[0], c[1], c[2], c[3])
	w.b.Clear(w.clearMask)
}

func (w *engineWindow) SetClearColor(color [4]float32) {
	w.clearColor = color
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) PollEvents() {
	platformPollEvents(w)
}

func (w *engineWindow) Backend() backend.Backend {
	return w.b
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) AspectRatio() float32 {
	return aspectRatio(w.width, w.height)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

// handleKey records key state and forwards the event.
func (w *engineWindow) handleKey(key int, pressed bool) {
	if w.escapeCloses && key == common.KeyEsc {
		if pressed {
			w.RequestClose()
		}
		return
	}

	w.mu.Lock()
	if pressed {
		w.keys[key] = true
	} else {
		delete(w.keys, key)
	}
	w.mu.Unlock()

	if w.onKey != nil {
		w.onKey(key, pressed)
	}
}

func (w *engineWindow) handleCursor(x, y float64) {
	if w.onCursor != nil {
		w.onCursor(x, y)
	}
}

func (w *engineWindow) handleScroll(yOffset float64) {
	if w.onScroll != nil {
		w.onScroll(yOffset)
	}
}

// handleResize stores the framebuffer size and matches the viewport to it.
func (w *engineWindow) handleResize(width, height int) {
	w.width = width
	w.height = height
	if w.b != nil {
		w.b.Viewport(0, 0, int32(width), int32(height))
	}
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// aspectRatio returns width/height, or 1 when either dimension is not positive.
func aspectRatio(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
