package limiter

import "time"

// FrameLimiterBuilderOption is a functional option for configuring a FrameLimiter via NewFrameLimiter.
type FrameLimiterBuilderOption func(*frameLimiter)

// WithTargetFPS sets the frame rate cap. Values of 0 or less leave the loop uncapped.
//
// Parameters:
//   - fps: frames per second
//
// Returns:
//   - FrameLimiterBuilderOption: option function to apply
func WithTargetFPS(fps int) FrameLimiterBuilderOption {
	return func(l *frameLimiter) {
		l.targetFPS = fps
	}
}

// WithClock replaces the time source and the sleep function. Nil arguments keep the
// defaults of time.Now and time.Sleep.
//
// Parameters:
//   - now: returns the current time
//   - sleep: blocks for the given duration
//
// Returns:
//   - FrameLimiterBuilderOption: option function to apply
func WithClock(now func() time.Time, sleep func(time.Duration)) FrameLimiterBuilderOption {
	return func(l *frameLimiter) {
		if now != nil {
			l.now = now
		}
		if sleep != nil {
			l.sleep = sleep
		}
	}
}
