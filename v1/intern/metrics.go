// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package intern

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics are always maintained; they are only exported when a registerer
// is configured with WithRegisterer.
type metrics struct {
	entries     prometheus.Gauge
	handles     prometheus.Gauge
	acquires    prometheus.Counter
	releases    prometheus.Counter
	allocations prometheus.Counter
	leaks       prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "intern_entries",
			Help: "Number of distinct strings currently interned.",
		}),
		handles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "intern_handles",
			Help: "Number of outstanding interned handles.",
		}),
		acquires: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intern_acquires_total",
			Help: "Total number of handles acquired.",
		}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intern_releases_total",
			Help: "Total number of handles released.",
		}),
		allocations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intern_allocations_total",
			Help: "Total number of canonical allocations created.",
		}),
		leaks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "intern_leaks_total",
			Help: "Total number of handles detected as leaked.",
		}),
	}
}

func (m *metrics) register(reg prometheus.Registerer) {
	reg.MustRegister(m.entries, m.handles, m.acquires, m.releases, m.allocations, m.leaks)
}

func (m *metrics) acquired(allocated bool) {
	m.acquires.Inc()
	m.handles.Inc()
	if allocated {
		m.allocations.Inc()
		m.entries.Inc()
	}
}

func (m *metrics) released(freed bool) {
	m.releases.Inc()
	m.handles.Dec()
	if freed {
		m.entries.Dec()
	}
}
