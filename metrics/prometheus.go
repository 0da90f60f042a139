package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// dequeMetrics holds the Prometheus collectors of one instrumented Deque.
type dequeMetrics struct {
	pushes      prometheus.Counter
	pops        prometheus.Counter
	rejects     prometheus.Counter
	saturations prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

func newDequeMetrics(reg prometheus.Registerer, component string) (*dequeMetrics, error) {
	labels := prometheus.Labels{"component": component}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "arraydeque",
			Name:        name,
			ConstLabels: labels,
			Help:        help,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "arraydeque",
			Name:        name,
			ConstLabels: labels,
			Help:        help,
		})
	}

	m := &dequeMetrics{
		pushes:      counter("pushes_total", "Total number of elements accepted"),
		pops:        counter("pops_total", "Total number of elements removed"),
		rejects:     counter("rejects_total", "Total number of elements rejected because the deque was full"),
		saturations: counter("saturations_total", "Total number of extend calls that dropped input on a full deque"),
		size:        gauge("size", "Current number of elements"),
		utilization: gauge("utilization", "Current number of elements relative to capacity (0.0 to 1.0)"),
	}

	collectors := []prometheus.Collector{m.pushes, m.pops, m.rejects, m.saturations, m.size, m.utilization}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			// Leave the registry as it was.
			for _, registered := range collectors[:i] {
				reg.Unregister(registered)
			}
			return nil, fmt.Errorf("register deque metrics for component %q: %w", component, err)
		}
	}
	return m, nil
}

func (m *dequeMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	if capacity > 0 {
		m.utilization.Set(float64(size) / float64(capacity))
	}
}
