package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRollingAverage(t *testing.T) {
	r := NewRollingAverage(3)
	assert.Equal(t, time.Duration(0), r.Average())

	r.Add(10 * time.Millisecond)
	r.Add(20 * time.Millisecond)
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, 15*time.Millisecond, r.Average())

	r.Add(30 * time.Millisecond)
	r.Add(40 * time.Millisecond) // evicts 10ms
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 30*time.Millisecond, r.Average())

	r.Reset()
	assert.Equal(t, 0, r.Count())
	assert.Equal(t, time.Duration(0), r.Average())
}

func TestRollingAverage_MinimumWindow(t *testing.T) {
	r := NewRollingAverage(0)
	r.Add(5 * time.Millisecond)
	r.Add(7 * time.Millisecond)
	assert.Equal(t, 7*time.Millisecond, r.Average())
}

func TestFrameMonitor_Report(t *testing.T) {
	m := NewFrameMonitor(4, 20*time.Millisecond)
	assert.False(t, m.Report().IsHealthy, "no frames yet")

	for i := 0; i < 4; i++ {
		m.RecordFrame(10 * time.Millisecond)
	}
	r := m.Report()
	assert.Equal(t, 10.0, r.AvgFrameMs)
	assert.InDelta(t, 100, r.FPS, 1e-9)
	assert.Equal(t, 4, r.TotalFrames)
	assert.Equal(t, 0, r.SlowFrames)
	assert.True(t, r.IsHealthy)

	m.RecordFrame(50 * time.Millisecond)
	r = m.Report()
	assert.Equal(t, 1, r.SlowFrames)
	assert.False(t, r.IsHealthy)

	m.Reset()
	r = m.Report()
	assert.Equal(t, 0, r.TotalFrames)
	assert.Equal(t, 0.0, r.FPS)
}
