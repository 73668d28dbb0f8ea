package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all catalog metrics
const namespace = "catalog"

// Registry is the Prometheus registry served on /metrics
var Registry = prometheus.NewRegistry()

// AuthorsListed counts GET /authors outcomes: ok, empty or error
var AuthorsListed = promauto.With(Registry).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authors_listed_total",
		Help:      "Total number of author list requests by outcome",
	},
	[]string{"outcome"},
)

// AuthorsImported counts authors resolved from Open Library
var AuthorsImported = promauto.With(Registry).NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authors_imported_total",
		Help:      "Total number of authors resolved from Open Library",
	},
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
