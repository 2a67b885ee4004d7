package engine

import (
	"runtime"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trace collects the order of calls made during a frame.
type trace struct{ calls []string }

func (t *trace) add(name string) {
	t.calls = append(t.calls, name)
}

// fakeWindow closes itself after a fixed number of polls.
type fakeWindow struct {
	tr        *trace
	remaining int
	closed    bool
}

var _ window.Window = &fakeWindow{}

func (w *fakeWindow) SetKeyCallback(func(int, bool)) {}

func (w *fakeWindow) SetCursorCallback(func(x, y float64)) {}

func (w *fakeWindow) SetScrollCallback(func(float64)) {}

func (w *fakeWindow) SetResizeCallback(func(int, int)) {}

func (w *fakeWindow) KeyPressed(int) bool {
	return false
}

func (w *fakeWindow) SetCursorCaptured(bool) {}

func (w *fakeWindow) Valid() bool {
	return !w.closed
}

func (w *fakeWindow) ShouldClose() bool {
	return w.remaining <= 0
}

func (w *fakeWindow) RequestClose() {
	w.remaining = 0
}

func (w *fakeWindow) Clear() {
	w.tr.add("clear")
}

func (w *fakeWindow) SetClearColor([4]float32) {}

func (w *fakeWindow) SwapBuffers() {
	w.tr.add("swap")
}

func (w *fakeWindow) PollEvents() {
	w.tr.add("poll")
	w.remaining--
}

func (w *fakeWindow) Backend() backend.Backend {
	return nil
}

func (w *fakeWindow) Width() int {
	return 800
}

func (w *fakeWindow) Height() int {
	return 600
}

func (w *fakeWindow) AspectRatio() float32 {
	return 800.0 / 600.0
}

func (w *fakeWindow) Close() error {
	return nil
}

type fakeLimiter struct {
	tr  *trace
	fps int
	dt  float32
}

func (l *fakeLimiter) Limit() {
	l.tr.add("limit")
	l.dt += 0.01
}

func (l *fakeLimiter) DeltaTime() float32 {
	return l.dt
}

func (l *fakeLimiter) TargetFPS() int {
	return l.fps
}

func (l *fakeLimiter) SetTargetFPS(fps int) {
	l.fps = fps
}

type fakeWatcher struct{ tr *trace }

var _ shader.Watcher = &fakeWatcher{}

func (w *fakeWatcher) Watch(shader.Shader) error {
	return nil
}

func (w *fakeWatcher) Unwatch(shader.Shader) {}

func (w *fakeWatcher) Pending() int {
	return 0
}

func (w *fakeWatcher) Apply() int {
	w.tr.add("reload")
	return 0
}

func (w *fakeWatcher) Close() error {
	return nil
}

func TestRunFrameOrder(t *testing.T) {
	tr := &trace{}
	lim := &fakeLimiter{tr: tr}
	var deltas []float32

	e := NewEngine(
		WithWindow(&fakeWindow{tr: tr, remaining: 2}),
		WithFrameLimiter(lim),
		WithShaderWatcher(&fakeWatcher{tr: tr}),
		WithTickCallback(func(dt float32) {
			tr.add("tick")
			deltas = append(deltas, dt)
		}),
		WithRenderCallback(func(float32) { tr.add("render") }),
	)

	require.NoError(t, e.Run())
	frame := []string{"reload", "tick", "clear", "render", "limit", "swap", "poll"}
	assert.Equal(t, append(append([]string{}, frame...), frame...), tr.calls)
	assert.Equal(t, uint64(2), e.Frames())
	require.Len(t, deltas, 2)
	assert.Zero(t, deltas[0])
	assert.InDelta(t, 0.01, deltas[1], 1e-6)
}

func TestRunWithoutWindow(t *testing.T) {
	e := NewEngine()
	assert.ErrorIs(t, e.Run(), ErrNoWindow)
}

func TestRunWithClosedWindow(t *testing.T) {
	w := &fakeWindow{tr: &trace{}, remaining: 1, closed: true}
	e := NewEngine(WithWindow(w))
	assert.ErrorIs(t, e.Run(), ErrNoWindow)
	assert.Zero(t, e.Frames())
}

func TestQuitStopsLoop(t *testing.T) {
	tr := &trace{}
	var e Engine
	e = NewEngine(
		WithWindow(&fakeWindow{tr: tr, remaining: 100}),
		WithFrameLimiter(&fakeLimiter{tr: tr}),
		WithTickCallback(func(float32) {
			if e.Frames() == 2 {
				e.Quit()
			}
		}),
	)

	require.NoError(t, e.Run())
	assert.Equal(t, uint64(3), e.Frames())

	// Quit is idempotent and Run returns at once afterwards.
	e.Quit()
	require.NoError(t, e.Run())
	assert.Equal(t, uint64(3), e.Frames())
}

func TestRunRecoversPanic(t *testing.T) {
	tr := &trace{}
	e := NewEngine(
		WithWindow(&fakeWindow{tr: tr, remaining: 5}),
		WithFrameLimiter(&fakeLimiter{tr: tr}),
		WithRenderCallback(func(float32) { panic("boom") }),
	)

	err := e.Run()
	assert.ErrorIs(t, err, ErrPanic)
	assert.ErrorContains(t, err, "boom")
	assert.NotContains(t, tr.calls, "swap")
}

func TestProfilerTicksWhenEnabled(t *testing.T) {
	tr := &trace{}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := profiler.NewProfiler(
		profiler.WithInterval(time.Millisecond),
		profiler.WithClock(func() time.Time {
			now = now.Add(time.Second)
			return now
		}),
		profiler.WithMemStatsReader(func(*runtime.MemStats) {}),
		profiler.WithQuiet(),
	)

	e := NewEngine(
		WithWindow(&fakeWindow{tr: tr, remaining: 1}),
		WithFrameLimiter(&fakeLimiter{tr: tr}),
		WithProfiler(p),
	)
	e.EnableProfiler()
	require.NoError(t, e.Run())
	assert.Equal(t, 1.0, p.Last().FPS)
}

func TestProfilerIdleWhenDisabled(t *testing.T) {
	tr := &trace{}
	p := profiler.NewProfiler(profiler.WithQuiet())
	e := NewEngine(
		WithWindow(&fakeWindow{tr: tr, remaining: 3}),
		WithFrameLimiter(&fakeLimiter{tr: tr}),
		WithProfiler(p),
		WithProfiling(true),
	)
	e.DisableProfiler()
	require.NoError(t, e.Run())
	assert.Zero(t, p.Last())
}

func TestTargetFPS(t *testing.T) {
	e := NewEngine(WithTargetFPS(30))
	assert.Equal(t, 30, e.Limiter().TargetFPS())

	e.SetTargetFPS(0)
	assert.Equal(t, 0, e.Limiter().TargetFPS())

	assert.Equal(t, 60, NewEngine().Limiter().TargetFPS())
}
