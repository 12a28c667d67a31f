package performance

import (
	"sync"
	"time"
)

// RollingAverage maintains a rolling average of durations over a fixed window
type RollingAverage struct {
	samples []time.Duration
	sum     time.Duration
	index   int
	filled  bool
	mu      sync.RWMutex
}

// NewRollingAverage creates a rolling average tracker with specified window size
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{
		samples: make([]time.Duration, windowSize),
	}
}

// Add records a new sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.filled {
		r.sum -= r.samples[r.index]
	}
	r.samples[r.index] = d
	r.sum += d

	r.index++
	if r.index == len(r.samples) {
		r.index = 0
		r.filled = true
	}
}

// Average returns the current rolling average
func (r *RollingAverage) Average() time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := r.count()
	if n == 0 {
		return 0
	}
	return r.sum / time.Duration(n)
}

// Count returns the number of samples currently tracked
func (r *RollingAverage) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count()
}

func (r *RollingAverage) count() int {
	if r.filled {
		return len(r.samples)
	}
	return r.index
}

// Reset clears all samples
func (r *RollingAverage) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sum = 0
	r.index = 0
	r.filled = false
	clear(r.samples)
}

// FrameMonitor tracks how long frames of the render loop take
type FrameMonitor struct {
	frameTimes  *RollingAverage
	budget      time.Duration
	totalFrames int
	slowFrames  int
	mu          sync.RWMutex
}

// FrameReport contains aggregated frame metrics
type FrameReport struct {
	AvgFrameMs  float64 // Rolling average frame time in milliseconds
	FPS         float64 // Frame rate the average frame time would allow
	TotalFrames int
	SlowFrames  int  // Frames that overran the budget
	IsHealthy   bool // Average within budget and under 1% slow frames
}

// NewFrameMonitor creates a monitor averaging over windowSize frames, with
// budget as the target frame time (1s/60 for 60fps)
func NewFrameMonitor(windowSize int, budget time.Duration) *FrameMonitor {
	return &FrameMonitor{
		frameTimes: NewRollingAverage(windowSize),
		budget:     budget,
	}
}

// RecordFrame records the time one frame spent updating and drawing,
// excluding any sleep for frame pacing
func (m *FrameMonitor) RecordFrame(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameTimes.Add(d)
	m.totalFrames++
	if d > m.budget {
		m.slowFrames++
	}
}

// Report generates a report with the current metrics
func (m *FrameMonitor) Report() FrameReport {
	m.mu.RLock()
	defer m.mu.RUnlock()

	avg := m.frameTimes.Average()
	avgMs := float64(avg.Microseconds()) / 1000.0

	fps := 0.0
	if avg > 0 {
		fps = float64(time.Second) / float64(avg)
	}

	slowRate := 0.0
	if m.totalFrames > 0 {
		slowRate = float64(m.slowFrames) / float64(m.totalFrames)
	}

	return FrameReport{
		AvgFrameMs:  avgMs,
		FPS:         fps,
		TotalFrames: m.totalFrames,
		SlowFrames:  m.slowFrames,
		IsHealthy:   m.totalFrames > 0 && avg <= m.budget && slowRate < 0.01,
	}
}

// Reset clears all metrics
func (m *FrameMonitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.frameTimes.Reset()
	m.totalFrames = 0
	m.slowFrames = 0
}
