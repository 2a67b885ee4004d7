package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/backend/backendtest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAspectRatio(t *testing.T) {
	assert.InDelta(t, 4.0/3.0, aspectRatio(1024, 768), 1e-6)
	assert.Equal(t, float32(2), aspectRatio(200, 100))
	assert.Equal(t, float32(1), aspectRatio(800, 0))
	assert.Equal(t, float32(1), aspectRatio(0, 0))
}

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "oxy-gl", w.title)
	assert.Equal(t, 1024, w.Width())
	assert.Equal(t, 768, w.Height())
	assert.Equal(t, 4, w.glMajor)
	assert.Equal(t, 1, w.glMinor)
	assert.True(t, w.escapeCloses)
	assert.False(t, w.vsync)
}

func TestNewEngineWindowOptions(t *testing.T) {
	rec := backendtest.New()
	w := newEngineWindow(
		WithTitle(""),
		WithWidth(640),
		WithHeight(480),
		WithGLVersion(3, 3),
		WithVSync(true),
		WithResizable(false),
		WithCursorCaptured(),
		WithEscapeCloses(false),
		WithBackend(rec),
	)
	assert.Equal(t, "oxy-gl", w.title)
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 3, w.glMajor)
	assert.Equal(t, 3, w.glMinor)
	assert.True(t, w.vsync)
	assert.False(t, w.resizable)
	assert.True(t, w.captured)
	assert.False(t, w.escapeCloses)
	assert.Same(t, rec, w.Backend())
}

func TestHandleKeyTracksState(t *testing.T) {
	w := newEngineWindow()
	var events []bool
	w.SetKeyCallback(func(key int, pressed bool) {
		assert.Equal(t, common.KeyW, key)
		events = append(events, pressed)
	})

	w.handleKey(common.KeyW, true)
	assert.True(t, w.KeyPressed(common.KeyW))
	w.handleKey(common.KeyW, false)
	assert.False(t, w.KeyPressed(common.KeyW))
	assert.Equal(t, []bool{true, false}, events)
}

func TestEscapeRequestsClose(t *testing.T) {
	w := newEngineWindow()
	called := false
	w.SetKeyCallback(func(int, bool) { called = true })

	w.handleKey(common.KeyEsc, true)
	assert.True(t, w.closeRequested)
	assert.True(t, w.ShouldClose())
	assert.False(t, called)
}

func TestEscapeDeliveredWhenDisabled(t *testing.T) {
	w := newEngineWindow(WithEscapeCloses(false))
	var got int
	w.SetKeyCallback(func(key int, _ bool) { got = key })

	w.handleKey(common.KeyEsc, true)
	assert.False(t, w.closeRequested)
	assert.Equal(t, common.KeyEsc, got)
}

func TestHandleResizeUpdatesViewport(t *testing.T) {
	rec := backendtest.New()
	w := newEngineWindow(WithBackend(rec))
	var size [2]int
	w.SetResizeCallback(func(width, height int) { size = [2]int{width, height} })

	w.handleResize(1920, 1080)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())
	assert.Equal(t, [4]int32{0, 0, 1920, 1080}, rec.ViewportValue())
	assert.Equal(t, [2]int{1920, 1080}, size)
	assert.InDelta(t, 16.0/9.0, w.AspectRatio(), 1e-6)

	// Minimized.
	w.handleResize(0, 0)
	assert.Equal(t, float32(1), w.AspectRatio())
}

func TestClearUsesClearColor(t *testing.T) {
	rec := backendtest.New()
	w := newEngineWindow(WithBackend(rec), WithClearColor([4]float32{0.2, 0.3, 0.3, 1}))

	w.Clear()
	assert.Equal(t, mgl32.Vec4{0.2, 0.3, 0.3, 1}, rec.ClearColorValue())
	assert.Equal(t, []backend.Enum{backend.ColorBufferBit | backend.DepthBufferBit}, rec.Clears())

	w.SetClearColor([4]float32{0, 0, 0, 1})
	w.Clear()
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, rec.ClearColorValue())
}

func TestUnopenedWindow(t *testing.T) {
	w := newEngineWindow()
	assert.True(t, w.ShouldClose())
	assert.Error(t, w.Close())
	w.PollEvents()
	w.SwapBuffers()
	w.SetCursorCaptured(true)
}

func TestValid(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.Valid())

	w.internalWindow = &glfwWindow{parent: w}
	assert.False(t, w.Valid(), "no backend yet")

	w.b = backendtest.New()
	assert.True(t, w.Valid())

	assert.Error(t, platformCloseWindow(w))
	assert.Nil(t, w.internalWindow)
	assert.False(t, w.Valid())
}

func TestCursorAndScrollForwarded(t *testing.T) {
	w := newEngineWindow()
	var cursor [2]float64
	var scroll float64
	w.SetCursorCallback(func(x, y float64) { cursor = [2]float64{x, y} })
	w.SetScrollCallback(func(y float64) { scroll = y })

	w.handleCursor(10, 20)
	w.handleScroll(-1)
	assert.Equal(t, [2]float64{10, 20}, cursor)
	assert.Equal(t, -1.0, scroll)
}
