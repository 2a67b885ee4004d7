package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one report period's worth of frame and memory statistics.
type Stats struct {
	// FPS is the average frame rate over the period.
	FPS float64
	// FrameTime is the average time between ticks.
	FrameTime time.Duration
	// HeapMB is the live heap in megabytes.
	HeapMB float64
	// AllocRateMB is the allocation rate in megabytes per second.
	AllocRateMB float64
	// GCCount is the cumulative number of completed collections.
	GCCount uint32
	// LastPause and MaxPause are GC stop-the-world pauses; MaxPause covers the period only.
	LastPause time.Duration
	MaxPause  time.Duration
	// SysMB is the memory obtained from the OS in megabytes.
	SysMB float64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	now     func() time.Time
	readMem func(*runtime.MemStats)
	quiet   bool

	last Stats
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		readMem:        runtime.ReadMemStats,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were collected this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.readMem(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	s := Stats{
		FPS:       float64(p.frameCount) / elapsed.Seconds(),
		FrameTime: elapsed / time.Duration(p.frameCount),
		HeapMB:    float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:     float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:   p.memStats.NumGC,
	}

	// TotalAlloc only grows, but a replaced reader may start below the previous sample.
	if p.memStats.TotalAlloc >= p.lastTotalAlloc {
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		s.AllocRateMB = float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()
	}

	gcCount := p.memStats.NumGC
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		s.LastPause = time.Duration(p.memStats.PauseNs[(gcCount+255)%256])

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := time.Duration(p.memStats.PauseNs[i%256])
			if pause > s.MaxPause {
				s.MaxPause = pause
			}
		}
	}

	if !p.quiet {
		log.Printf("[Profiler] FPS: %.2f (%.2f ms) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			s.FPS, float64(s.FrameTime.Microseconds())/1000, s.HeapMB, s.AllocRateMB, s.GCCount,
			s.LastPause.Microseconds(), s.MaxPause.Microseconds(), s.SysMB)
	}

	p.last = s
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the statistics collected by the most recent reporting Tick.
// The zero Stats is returned before the first report.
//
// Returns:
//   - Stats: the last report
func (p *Profiler) Last() Stats {
	return p.last
}

// Interval returns the reporting period.
//
// Returns:
//   - time.Duration: the update interval
func (p *Profiler) Interval() time.Duration {
	return p.updateInterval
}
