// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package stats records search statistics in Prometheus collectors. A
// Collector implements skipsearch.Observer and can be shared by searchers
// running in parallel.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ulikunitz/skipsearch"
)

// Collector holds the Prometheus collectors for searcher statistics.
type Collector struct {
	ScansTotal         *prometheus.CounterVec
	MatchesTotal       *prometheus.CounterVec
	ComparisonsTotal   *prometheus.CounterVec
	ComparisonsPerScan *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them in a new registry.
func New() *Collector {
	c := &Collector{
		ScansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skipsearch_scans_total",
				Help: "Total number of Search calls that scanned the buffer, by algorithm.",
			},
			[]string{"algorithm"},
		),
		MatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skipsearch_matches_total",
				Help: "Total number of matches found, by algorithm.",
			},
			[]string{"algorithm"},
		),
		ComparisonsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skipsearch_comparisons_total",
				Help: "Total number of window comparisons, by algorithm.",
			},
			[]string{"algorithm"},
		),
		ComparisonsPerScan: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skipsearch_comparisons_per_scan",
				Help:    "Number of window comparisons per Search call.",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(
		c.ScansTotal,
		c.MatchesTotal,
		c.ComparisonsTotal,
		c.ComparisonsPerScan,
	)
	return c
}

// Scan records the result of a single Search call.
func (c *Collector) Scan(a skipsearch.Algorithm, comparisons int64, match bool) {
	alg := a.String()
	c.ScansTotal.WithLabelValues(alg).Inc()
	if match {
		c.MatchesTotal.WithLabelValues(alg).Inc()
	}
	c.ComparisonsTotal.WithLabelValues(alg).Add(float64(comparisons))
	c.ComparisonsPerScan.WithLabelValues(alg).Observe(float64(comparisons))
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the metrics in the text exposition format to the
// file at path, as expected by the textfile collector of the node exporter.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
