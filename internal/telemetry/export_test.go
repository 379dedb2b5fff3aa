// SPDX-License-Identifier: MIT

package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Registry exposes the private registry to testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }
