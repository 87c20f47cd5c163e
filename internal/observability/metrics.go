// Package observability exposes Prometheus metrics for the graph service.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	RebuildsTotal    prometheus.Counter
	RebuildFailures  prometheus.Counter
	GraphNodes       prometheus.Gauge
	GraphEdges       prometheus.Gauge
	SearchesTotal    prometheus.Counter
	NavigationsTotal prometheus.Counter
	ActiveSessions   prometheus.Gauge
	SSEClients       prometheus.Gauge
}

// New creates the metric set on a private registry
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		RebuildsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "docmap_graph_rebuilds_total",
			Help: "Number of graph rebuilds from the content tree.",
		}),
		RebuildFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "docmap_graph_rebuild_failures_total",
			Help: "Number of graph rebuilds that failed.",
		}),
		GraphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docmap_graph_nodes",
			Help: "Nodes in the current graph model.",
		}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docmap_graph_edges",
			Help: "Edges in the current graph model.",
		}),
		SearchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "docmap_searches_total",
			Help: "Search queries across all sessions.",
		}),
		NavigationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "docmap_navigations_total",
			Help: "Committed navigation requests.",
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docmap_active_sessions",
			Help: "Live viewer sessions.",
		}),
		SSEClients: factory.NewGauge(prometheus.GaugeOpts{
			Name: "docmap_sse_clients",
			Help: "Connected SSE clients.",
		}),
	}
}

// Handler returns the HTTP handler serving the metric set
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
