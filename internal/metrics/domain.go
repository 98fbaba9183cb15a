package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "bonfire"

// Cross-store Prometheus metrics.
var (
	JoinDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "join_dropped_total",
			Help:      "Ranked graph results dropped because the document record is missing",
		},
		[]string{"operation"},
	)

	GraphSyncWarningsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graph_sync_warnings_total",
			Help:      "Graph writes that failed after the document write succeeded",
		},
		[]string{"operation"},
	)

	JoinDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "join_duration_seconds",
			Help:      "Duration of graph traversal plus document resolution",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	ReconcileRepairsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_repairs_total",
			Help:      "Nodes created or removed by the reconciliation sweep",
		},
		[]string{"kind", "action"}, // kind: person/item, action: merged/deleted
	)
)

var domainMetricsRegistered bool

// RegisterDomainMetrics registers the cross-store metrics. Must be called once from main.
func RegisterDomainMetrics() {
	if domainMetricsRegistered {
		return
	}
	prometheus.MustRegister(JoinDroppedTotal)
	prometheus.MustRegister(GraphSyncWarningsTotal)
	prometheus.MustRegister(JoinDuration)
	prometheus.MustRegister(ReconcileRepairsTotal)
	domainMetricsRegistered = true
}
