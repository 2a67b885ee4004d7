package engine

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/limiter"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, for example to change its interval.
//
// Parameters:
//   - p: the profiler ticked once per frame while profiling is enabled
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose context the loop renders into.
//
// Parameters:
//   - w: an open Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithTargetFPS sets the render frame rate cap. Pass 0 to uncap the loop.
// Ignored when WithFrameLimiter supplies a limiter.
//
// Parameters:
//   - fps: maximum frames per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTargetFPS(fps int) EngineBuilderOption {
	return func(e *engine) {
		if e.limiter == nil {
			e.limiter = limiter.NewFrameLimiter(limiter.WithTargetFPS(fps))
		}
	}
}

// WithFrameLimiter sets the limiter pacing the loop.
//
// Parameters:
//   - l: the frame limiter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimiter(l limiter.FrameLimiter) EngineBuilderOption {
	return func(e *engine) {
		e.limiter = l
	}
}

// WithShaderWatcher applies pending shader reloads at the start of every frame.
//
// Parameters:
//   - w: the shader watcher
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithShaderWatcher(w shader.Watcher) EngineBuilderOption {
	return func(e *engine) {
		e.watcher = w
	}
}

// WithTickCallback registers the per-frame update function during construction.
//
// Parameters:
//   - callback: function receiving the delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.tickCallback = callback
	}
}

// WithRenderCallback registers the per-frame draw function during construction.
//
// Parameters:
//   - callback: function receiving the delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.renderCallback = callback
	}
}
