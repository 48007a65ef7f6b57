// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics records bst tree events as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/google/bst"
)

// Collector holds the metrics fed by one or more trees.
type Collector struct {
	ops           *prometheus.CounterVec
	rebalanceSize prometheus.Gauge
	rebalances    prometheus.Histogram
}

// New creates the collector's metrics under namespace and registers them with
// reg.  A nil reg leaves them unregistered.  Like promauto, New panics if the
// metrics are already registered with reg.
func New(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)
	return &Collector{
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bst_operations_total",
			Help:      "The total number of tree events, by operation",
		}, []string{"op"}),
		rebalanceSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bst_rebalance_size",
			Help:      "The number of values in the tree at the last rebalance",
		}),
		rebalances: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "bst_rebalance_values",
			Help:      "The number of values rebuilt per rebalance",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

// Observer returns an observer for bst.WithObserver that feeds c.
func Observer[T any](c *Collector) func(bst.Event[T]) {
	return func(e bst.Event[T]) {
		c.ops.WithLabelValues(e.Op.String()).Inc()
		if e.Op == bst.OpRebalance {
			n := float64(len(e.Values))
			c.rebalanceSize.Set(n)
			c.rebalances.Observe(n)
		}
	}
}
