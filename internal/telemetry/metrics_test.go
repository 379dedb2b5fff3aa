// SPDX-License-Identifier: MIT

package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstride/internal/telemetry"
)

func TestMetrics_Record(t *testing.T) {
	m := telemetry.New()
	m.KernelRun("masked_unary", 5)
	m.KernelRun("masked_unary", 0)
	m.KernelRun("unary", 3)
	m.RingPush(false)
	m.RingPush(true)
	m.Toposort(false)
	m.Toposort(true)
	m.Toposort(true)

	snap, err := m.Snapshot()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, s := range snap {
		got[s.Name] = s.Value
	}
	assert.Equal(t, map[string]float64{
		`lvstride_circular_evictions_total`:                         1,
		`lvstride_circular_pushes_total`:                            2,
		`lvstride_compact_toposorts_total{outcome="cycle"}`:         2,
		`lvstride_compact_toposorts_total{outcome="order"}`:         1,
		`lvstride_strided_elements_total`:                           8,
		`lvstride_strided_kernel_runs_total{kernel="masked_unary"}`: 2,
		`lvstride_strided_kernel_runs_total{kernel="unary"}`:        1,
	}, got)

	for i := 1; i < len(snap); i++ {
		assert.Less(t, snap[i-1].Name, snap[i].Name)
	}
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := telemetry.New()
	b := telemetry.New()
	a.RingPush(true)

	n, err := testutil.GatherAndCount(a.Registry(), "lvstride_circular_evictions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	snap, err := b.Snapshot()
	require.NoError(t, err)
	for _, s := range snap {
		assert.Zero(t, s.Value, s.Name)
	}
}
