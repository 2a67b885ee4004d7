package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when told to or when slept on.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFake() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestLimitSleepsRemainder(t *testing.T) {
	clock := newFake()
	l := NewFrameLimiter(WithTargetFPS(50), WithClock(clock.now, clock.sleep))

	clock.advance(5 * time.Millisecond)
	l.Limit()

	require.Len(t, clock.sleeps, 1)
	assert.Equal(t, 15*time.Millisecond, clock.sleeps[0])
	assert.InDelta(t, 0.020, l.DeltaTime(), 1e-6)
}

func TestLimitSlowFrameDoesNotSleep(t *testing.T) {
	clock := newFake()
	l := NewFrameLimiter(WithTargetFPS(50), WithClock(clock.now, clock.sleep))

	clock.advance(35 * time.Millisecond)
	l.Limit()

	assert.Empty(t, clock.sleeps)
	assert.InDelta(t, 0.035, l.DeltaTime(), 1e-6)
}

func TestLimitMeasuresFromPreviousLimit(t *testing.T) {
	clock := newFake()
	l := NewFrameLimiter(WithTargetFPS(100), WithClock(clock.now, clock.sleep))

	clock.advance(2 * time.Millisecond)
	l.Limit()
	clock.advance(4 * time.Millisecond)
	l.Limit()

	assert.Equal(t, []time.Duration{8 * time.Millisecond, 6 * time.Millisecond}, clock.sleeps)
	assert.InDelta(t, 0.010, l.DeltaTime(), 1e-6)
}

func TestUncapped(t *testing.T) {
	clock := newFake()
	l := NewFrameLimiter(WithTargetFPS(0), WithClock(clock.now, clock.sleep))
	assert.Zero(t, l.DeltaTime())

	clock.advance(time.Millisecond)
	l.Limit()
	assert.Empty(t, clock.sleeps)
	assert.InDelta(t, 0.001, l.DeltaTime(), 1e-6)
}

func TestSetTargetFPS(t *testing.T) {
	clock := newFake()
	l := NewFrameLimiter(WithClock(clock.now, clock.sleep))
	assert.Equal(t, 60, l.TargetFPS())
	assert.InDelta(t, 1.0/60, l.DeltaTime(), 1e-6)

	l.SetTargetFPS(25)
	assert.Equal(t, 25, l.TargetFPS())
	l.Limit()
	require.Len(t, clock.sleeps, 1)
	assert.Equal(t, 40*time.Millisecond, clock.sleeps[0])

	l.SetTargetFPS(-1)
	l.Limit()
	assert.Len(t, clock.sleeps, 1)
}

func TestRealClock(t *testing.T) {
	l := NewFrameLimiter(WithTargetFPS(100))
	start := time.Now()
	l.Limit()
	assert.GreaterOrEqual(t, time.Since(start), 9*time.Millisecond)
	assert.GreaterOrEqual(t, l.DeltaTime(), float32(0.009))
}
