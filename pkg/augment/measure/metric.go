package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu      *sync.Mutex
	elapsed time.Duration
	calls   int64
	samples int64
}

func (mt *DefaultMetric) AddDuration(elapsed time.Duration, samples int) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.calls++
	mt.samples += int64(samples)
	mt.elapsed += elapsed
}

func (mt *DefaultMetric) TotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.elapsed
}

func (mt *DefaultMetric) Calls() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.calls
}

func (mt *DefaultMetric) Samples() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.samples
}

// AVGDuration returns the average duration of one call.
func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.calls == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.elapsed) / float64(mt.calls)))
}

// AVGSampleDuration returns the average duration spent on one sample.
func (mt *DefaultMetric) AVGSampleDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.samples == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.elapsed) / float64(mt.samples)))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	}

	return d
}

var _ Metric = (*DefaultMetric)(nil)
