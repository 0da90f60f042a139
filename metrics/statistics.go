package metrics

import (
	"sync/atomic"
	"time"
)

// Statistics counts operations on an instrumented Deque. Counters are
// atomic, so a Statistics may be read from another goroutine while the
// owner of the Deque keeps using it.
type Statistics struct {
	pushes      atomic.Int64
	pops        atomic.Int64
	rejects     atomic.Int64
	saturations atomic.Int64
	currentSize atomic.Int64
	maxSize     atomic.Int64

	startTime time.Time
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{startTime: time.Now()}
}

func (s *Statistics) push(n int) { s.pushes.Add(int64(n)) }
func (s *Statistics) pop()       { s.pops.Add(1) }
func (s *Statistics) reject()    { s.rejects.Add(1) }
func (s *Statistics) saturate()  { s.saturations.Add(1) }

func (s *Statistics) updateSize(size int) {
	s.currentSize.Store(int64(size))
	for {
		m := s.maxSize.Load()
		if int64(size) <= m || s.maxSize.CompareAndSwap(m, int64(size)) {
			return
		}
	}
}

// Pushes returns the number of elements accepted.
func (s *Statistics) Pushes() int64 { return s.pushes.Load() }

// Pops returns the number of elements removed.
func (s *Statistics) Pops() int64 { return s.pops.Load() }

// Rejects returns the number of elements refused because the Deque was full.
func (s *Statistics) Rejects() int64 { return s.rejects.Load() }

// Saturations returns the number of Extend calls that dropped input because
// the Deque was full. A call whose input fits exactly is not counted.
func (s *Statistics) Saturations() int64 { return s.saturations.Load() }

// CurrentSize returns the number of elements in the Deque.
func (s *Statistics) CurrentSize() int64 { return s.currentSize.Load() }

// MaxSize returns the largest number of elements the Deque has held.
func (s *Statistics) MaxSize() int64 { return s.maxSize.Load() }

// Uptime returns how long the Deque has been tracked.
func (s *Statistics) Uptime() time.Duration { return time.Since(s.startTime) }

// RejectRate returns the fraction of attempted pushes that were rejected
// (0.0 to 1.0).
func (s *Statistics) RejectRate() float64 {
	rejects := s.Rejects()
	attempts := s.Pushes() + rejects
	if attempts == 0 {
		return 0.0
	}
	return float64(rejects) / float64(attempts)
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Pushes      int64         `json:"pushes"`
	Pops        int64         `json:"pops"`
	Rejects     int64         `json:"rejects"`
	Saturations int64         `json:"saturations"`
	CurrentSize int64         `json:"current_size"`
	MaxSize     int64         `json:"max_size"`
	RejectRate  float64       `json:"reject_rate"`
	Uptime      time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:      s.Pushes(),
		Pops:        s.Pops(),
		Rejects:     s.Rejects(),
		Saturations: s.Saturations(),
		CurrentSize: s.CurrentSize(),
		MaxSize:     s.MaxSize(),
		RejectRate:  s.RejectRate(),
		Uptime:      s.Uptime(),
	}
}
