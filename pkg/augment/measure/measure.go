package measure

import (
	"sort"
	"sync"
)

type DefaultMeasure struct {
	mu    sync.Mutex
	Steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		Steps: make(map[string]Metric),
	}
}

func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt := &DefaultMetric{mu: &sync.Mutex{}}
	m.Steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.Steps))
	for name, mt := range m.Steps {
		res[name] = mt
	}

	return res
}

// Ranking is the cost of one operator.
type Ranking struct {
	Name   string
	Metric Metric
}

// Slowest returns the operators of m that ran at least once, the most
// expensive per call first. Operators with the same cost are sorted by name.
func Slowest(m Measure) []Ranking {
	res := []Ranking{}
	for name, mt := range m.AllMetrics() {
		if mt.Calls() == 0 {
			continue
		}
		res = append(res, Ranking{Name: name, Metric: mt})
	}

	sort.Slice(res, func(i, j int) bool {
		di, dj := res[i].Metric.AVGDuration(), res[j].Metric.AVGDuration()
		if di != dj {
			return di > dj
		}

		return res[i].Name < res[j].Name
	})

	return res
}

var _ Measure = (*DefaultMeasure)(nil)
