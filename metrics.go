package kitaev

import (
	"sync"
	"time"
)

// Metrics tracks backend submission counters.
type Metrics struct {
	mu               sync.RWMutex
	JobsSubmitted    int64
	CircuitsExecuted int64
	ShotsSampled     int64
	LastSubmission   time.Time
}

// MetricsSnapshot is a copy of the counters at a point in time.
type MetricsSnapshot struct {
	JobsSubmitted    int64
	CircuitsExecuted int64
	ShotsSampled     int64
	LastSubmission   time.Time
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordJob(circuits, shots int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.JobsSubmitted++
	m.CircuitsExecuted += int64(circuits)
	m.ShotsSampled += int64(circuits) * int64(shots)
	m.LastSubmission = time.Now()
}

// Snapshot returns a consistent copy of the counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return MetricsSnapshot{
		JobsSubmitted:    m.JobsSubmitted,
		CircuitsExecuted: m.CircuitsExecuted,
		ShotsSampled:     m.ShotsSampled,
		LastSubmission:   m.LastSubmission,
	}
}
