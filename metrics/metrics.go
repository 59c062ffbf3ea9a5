/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics exposes per-function invocation metrics through prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	DirectionIn  = "in"
	DirectionOut = "out"
)

// Collector groups the counters of one engine. All methods are safe on a nil receiver,
// which is how an engine without metrics records nothing.
type Collector struct {
	Invocations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Rows        *prometheus.CounterVec
}

// NewCollector registers the collectors on reg under the given namespace.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		Invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "udf",
			Name:      "invocations_total",
			Help:      "Counter of transform invocations by function and status",
		}, []string{"function", "status"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "udf",
			Name:      "duration_seconds",
			Help:      "Histogram of transform execution time",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"function"}),

		Rows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "udf",
			Name:      "rows_total",
			Help:      "Counter of data rows consumed and produced by function",
		}, []string{"function", "direction"}),
	}
}

// Observe records one finished invocation. rowsOut is ignored when err is non-nil.
func (c *Collector) Observe(function string, elapsed time.Duration, rowsIn, rowsOut int, err error) {
	if c == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	c.Invocations.WithLabelValues(function, status).Inc()
	c.Duration.WithLabelValues(function).Observe(elapsed.Seconds())
	c.Rows.WithLabelValues(function, DirectionIn).Add(float64(rowsIn))
	if err == nil {
		c.Rows.WithLabelValues(function, DirectionOut).Add(float64(rowsOut))
	}
}
