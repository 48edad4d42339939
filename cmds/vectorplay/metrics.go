package main

import (
	"fmt"
	"io"

	vm "github.com/VictoriaMetrics/metrics"

	"github.com/safing/vector/base/vector"
)

// Metrics holds the metric set of a single script run.
type Metrics struct {
	set     *vm.Set
	growths *vm.Counter

	// ops holds the operation counters, created on first use.
	ops map[string]*vm.Counter
}

// NewMetrics creates a metric set that reports on vec.
func NewMetrics(vec *vector.Vector[int]) *Metrics {
	set := vm.NewSet()
	set.NewGauge("vectorplay_size", func() float64 {
		return float64(vec.Len())
	})
	set.NewGauge("vectorplay_capacity", func() float64 {
		return float64(vec.Cap())
	})

	return &Metrics{
		set:     set,
		growths: set.NewCounter("vectorplay_growths_total"),
		ops:     make(map[string]*vm.Counter),
	}
}

func (m *Metrics) countOp(op string) {
	counter, ok := m.ops[op]
	if !ok {
		counter = m.set.NewCounter(fmt.Sprintf(`vectorplay_operations_total{op=%q}`, op))
		m.ops[op] = counter
	}
	counter.Inc()
}

func (m *Metrics) countGrowth() {
	m.growths.Inc()
}

// Growths returns the number of growth events seen so far.
func (m *Metrics) Growths() uint64 {
	return m.growths.Get()
}

// Ops returns how often op was executed.
func (m *Metrics) Ops(op string) uint64 {
	if counter, ok := m.ops[op]; ok {
		return counter.Get()
	}
	return 0
}

// WritePrometheus writes all metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}
