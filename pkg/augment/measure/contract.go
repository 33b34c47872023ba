package measure

import "time"

// Measure holds one metric per operator.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the cost of one operator.
type Metric interface {
	AddDuration(elapsed time.Duration, samples int)
	AVGDuration() time.Duration
	AVGSampleDuration() time.Duration
	TotalDuration() time.Duration
	Calls() int64
	Samples() int64
}
