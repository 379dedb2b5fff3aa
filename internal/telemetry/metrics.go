// SPDX-License-Identifier: MIT

// Package telemetry holds the lvstride CLI counters on a private prometheus
// registry. Library packages never touch it; commands record what they ran.
package telemetry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "lvstride"

// Toposort outcome label values.
const (
	OutcomeOrder = "order"
	OutcomeCycle = "cycle"
)

// Metrics is the set of CLI counters.
type Metrics struct {
	reg *prometheus.Registry

	// kernelRuns counts strided kernel invocations. Labels: kernel.
	kernelRuns *prometheus.CounterVec
	// elements counts logical elements visited by kernels.
	elements prometheus.Counter
	// ringPushes counts circular buffer pushes.
	ringPushes prometheus.Counter
	// ringEvictions counts pushes that evicted a value.
	ringEvictions prometheus.Counter
	// toposorts counts topological sorts. Labels: outcome.
	toposorts *prometheus.CounterVec
}

// New registers every counter on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		reg: reg,
		kernelRuns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strided",
			Name:      "kernel_runs_total",
			Help:      "Strided kernel invocations by kernel name",
		}, []string{"kernel"}),
		elements: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "strided",
			Name:      "elements_total",
			Help:      "Logical elements visited by strided kernels",
		}),
		ringPushes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "circular",
			Name:      "pushes_total",
			Help:      "Values pushed into circular buffers",
		}),
		ringEvictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "circular",
			Name:      "evictions_total",
			Help:      "Values evicted from full circular buffers",
		}),
		toposorts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compact",
			Name:      "toposorts_total",
			Help:      "Topological sorts by outcome (order, cycle)",
		}, []string{"outcome"}),
	}
}

// KernelRun records one kernel call over n logical elements.
func (m *Metrics) KernelRun(kernel string, n int) {
	m.kernelRuns.WithLabelValues(kernel).Inc()
	if n > 0 {
		m.elements.Add(float64(n))
	}
}

// RingPush records one push; evicted reports whether a value was dropped.
func (m *Metrics) RingPush(evicted bool) {
	m.ringPushes.Inc()
	if evicted {
		m.ringEvictions.Inc()
	}
}

// Toposort records a sort outcome.
func (m *Metrics) Toposort(foundCycle bool) {
	if foundCycle {
		m.toposorts.WithLabelValues(OutcomeCycle).Inc()
		return
	}
	m.toposorts.WithLabelValues(OutcomeOrder).Inc()
}

// Sample is one flattened counter value.
type Sample struct {
	Name  string // metric name plus {k="v",...} when labelled
	Value float64
}

// Snapshot gathers every counter, sorted by name.
func (m *Metrics) Snapshot() ([]Sample, error) {
	families, err := m.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	var out []Sample
	for _, fam := range families {
		for _, metric := range fam.GetMetric() {
			out = append(out, Sample{
				Name:  fam.GetName() + labelSuffix(metric.GetLabel()),
				Value: metric.GetCounter().GetValue(),
			})
		}
	}
	slices.SortFunc(out, func(a, b Sample) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func labelSuffix(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
