// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus collectors for idea generation and
// the HTTP surface. Each Collector owns a private registry so tests can
// build as many as they like.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure reasons recorded by RecordFailure.
const (
	ReasonNoMatch       = "no_match"
	ReasonUnsatisfiable = "unsatisfiable"
	ReasonInvalid       = "invalid_request"
)

// Collector holds the application metrics.
type Collector struct {
	registry *prometheus.Registry

	IdeasGenerated     *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewCollector creates and registers all metrics under namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		IdeasGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ideas_generated_total",
				Help:      "Total number of ideas generated",
			},
			[]string{"variant"},
		),
		GenerationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generation_failures_total",
				Help:      "Total number of failed generation requests",
			},
			[]string{"reason"},
		),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		c.IdeasGenerated,
		c.GenerationFailures,
		c.HTTPRequests,
		c.HTTPDuration,
	)
	return c
}

// RecordIdeas counts n ideas generated for variant.
func (c *Collector) RecordIdeas(variant string, n int) {
	c.IdeasGenerated.WithLabelValues(variant).Add(float64(n))
}

// RecordFailure counts one failed generation request.
func (c *Collector) RecordFailure(reason string) {
	c.GenerationFailures.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records the count and latency of one request.
func (c *Collector) RecordHTTPRequest(method, route, status string, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
