package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/limiter"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

var (
	// ErrNoWindow is returned by Run when the engine was built without a window or the
	// window is no longer valid.
	ErrNoWindow = errors.New("engine has no window")
	// ErrPanic wraps a panic recovered from a frame callback.
	ErrPanic = errors.New("render loop panicked")
)

// engine implements the Engine interface.
// Drives the render loop on the calling thread, which must own the GL context.
type engine struct {
	mu *sync.Mutex

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window  window.Window
	limiter limiter.FrameLimiter
	watcher shader.Watcher

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	frames uint64
}

// Engine is the main entry point for a tutorial.
// It owns the per-frame order: apply shader reloads, tick, clear, render, limit, swap, poll.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Limiter returns the frame limiter pacing the loop.
	//
	// Returns:
	//   - limiter.FrameLimiter: the limiter
	Limiter() limiter.FrameLimiter

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTargetFPS changes the frame rate cap. Values of 0 or less uncap the loop.
	//
	// Parameters:
	//   - fps: maximum frames per second
	SetTargetFPS(fps int)

	// SetTickCallback registers the function called first each frame.
	// Use this for input processing and camera updates.
	//
	// Parameters:
	//   - callback: function receiving the previous frame's delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called after the framebuffer is cleared.
	// Use this for draw calls.
	//
	// Parameters:
	//   - callback: function receiving the previous frame's delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// Frames returns the number of completed frames.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run runs the render loop until the window closes or Quit is called.
	// A panic in a callback is recovered, logged and returned as ErrPanic.
	//
	// Returns:
	//   - error: ErrNoWindow, ErrPanic, or nil on a normal exit
	Run() error

	// Quit stops the render loop after the current frame.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// The frame limiter defaults to 60 frames per second and the profiler to a one second interval.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:          &sync.Mutex{},
		quitChannel: make(chan struct{}),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.limiter == nil {
		e.limiter = limiter.NewFrameLimiter()
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Limiter() limiter.FrameLimiter {
	return e.limiter
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.mu.Lock()
	e.profilingEnabled = true
	e.mu.Unlock()
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.mu.Lock()
	e.profilingEnabled = false
	e.mu.Unlock()
}

func (e *engine) SetTargetFPS(fps int) {
	e.limiter.SetTargetFPS(fps)
}

// SetTickCallback registers the function called each frame before clearing.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each frame after clearing.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

func (e *engine) Run() (err error) {
	if e.window == nil || !e.window.Valid() {
		return ErrNoWindow
	}

	// Recover from panics inside frame callbacks so deferred resource releases in main still run.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] render loop recovered from panic: %v", r)
			e.signalQuit()
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	for !e.quitting() && !e.window.ShouldClose() {
		e.frame()
	}
	return nil
}

// Quit signals the render loop to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal the loop to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) quitting() bool {
	select {
	case <-e.quitChannel:
		return true
	default:
		return false
	}
}

// frame runs one iteration of the loop.
func (e *engine) frame() {
	if e.watcher != nil {
		e.watcher.Apply()
	}

	dt := e.limiter.DeltaTime()

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	e.window.Clear()

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	e.limiter.Limit()

	e.mu.Lock()
	profiling := e.profilingEnabled
	e.frames++
	e.mu.Unlock()
	if profiling && e.profiler != nil {
		e.profiler.Tick()
	}

	e.window.SwapBuffers()
	e.window.PollEvents()
}
