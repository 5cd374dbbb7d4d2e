// Package metrics exposes Prometheus counters for division lookups.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	KindGet      = "get"
	KindRevision = "revision"
	KindSearch   = "search"

	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

var (
	LookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "divisions_lookups_total",
		Help: "Total division lookups by kind and outcome",
	}, []string{"kind", "outcome"})
	MissingParentsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "divisions_missing_parents_total",
		Help: "Hierarchy derivations that hit a missing parent row",
	})
	DatasetRevisions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "divisions_dataset_revisions",
		Help: "Number of revisions in the loaded dataset",
	})
)

func init() {
	prometheus.MustRegister(LookupsTotal)
	prometheus.MustRegister(MissingParentsTotal)
	prometheus.MustRegister(DatasetRevisions)
}

// ObserveLookup counts one lookup.
func ObserveLookup(kind string, found bool) {
	outcome := OutcomeMiss
	if found {
		outcome = OutcomeHit
	}
	LookupsTotal.WithLabelValues(kind, outcome).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
