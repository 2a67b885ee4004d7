package limiter

import (
	"sync"
	"time"
)

// frameLimiter is the implementation of the FrameLimiter interface.
type frameLimiter struct {
	mu *sync.Mutex

	targetFPS int
	frameTime time.Duration

	last  time.Time
	delta time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// FrameLimiter caps the frame rate of a render loop by sleeping away whatever is left of
// the target frame period, and measures the achieved frame time.
type FrameLimiter interface {
	// Limit sleeps for the remainder of the target frame period measured from the previous
	// Limit call, then records the time since that call as the new delta time.
	// With an uncapped target it only records the delta time.
	Limit()

	// DeltaTime returns the duration of the last frame in seconds, including the sleep.
	// Before the first Limit it is the target frame period, or 0 when uncapped.
	//
	// Returns:
	//   - float32: the frame time in seconds
	DeltaTime() float32

	// TargetFPS returns the frame rate cap.
	//
	// Returns:
	//   - int: frames per second, 0 or less when uncapped
	TargetFPS() int

	// SetTargetFPS changes the frame rate cap. Values of 0 or less remove the cap.
	//
	// Parameters:
	//   - fps: frames per second
	SetTargetFPS(fps int)
}

var _ FrameLimiter = &frameLimiter{}

// NewFrameLimiter creates a limiter targeting 60 frames per second. The frame clock starts
// at construction.
//
// Parameters:
//   - options: functional options to configure the limiter
//
// Returns:
//   - FrameLimiter: the newly created limiter
func NewFrameLimiter(options ...FrameLimiterBuilderOption) FrameLimiter {
	l := &frameLimiter{
		mu:        &sync.Mutex{},
		targetFPS: 60,
		now:       time.Now,
		sleep:     time.Sleep,
	}
	for _, option := range options {
		option(l)
	}
	l.frameTime = frameTime(l.targetFPS)
	l.delta = l.frameTime
	l.last = l.now()
	return l
}

func (l *frameLimiter) Limit() {
	l.mu.Lock()
	defer l.mu.Unlock()

	elapsed := l.now().Sub(l.last)
	if l.frameTime > 0 && elapsed < l.frameTime {
		l.sleep(l.frameTime - elapsed)
	}

	current := l.now()
	l.delta = current.Sub(l.last)
	l.last = current
}

func (l *frameLimiter) DeltaTime() float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return float32(l.delta.Seconds())
}

func (l *frameLimiter) TargetFPS() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.targetFPS
}

func (l *frameLimiter) SetTargetFPS(fps int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.targetFPS = fps
	l.frameTime = frameTime(fps)
}

// frameTime returns the period of one frame at fps, or 0 for an uncapped target.
func frameTime(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
