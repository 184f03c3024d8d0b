// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewSizeGauge returns a MetricsGauge backed by a prometheus.Gauge,
// registered under the "mempool_size" name. Callers that don't want
// prometheus wiring can pass nil as Config.SizeGauge and the pool falls
// back to a no-op gauge.
func NewSizeGauge() prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ironfish",
		Subsystem: "mempool",
		Name:      "size",
		Help:      "Number of transactions currently held in the mempool.",
	})
}
