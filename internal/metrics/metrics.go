package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placerank_requests_total",
			Help: "Total handled HTTP requests",
		},
		[]string{"code"},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placerank_cache_lookups_total",
			Help: "Listing cache lookups",
		},
		[]string{"result"}, // hit|miss
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placerank_upstream_requests_total",
			Help: "Upstream page fetches by status code",
		},
		[]string{"code"},
	)

	ListDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placerank_list_duration_seconds",
			Help:    "Duration of listing computation including upstream calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	CacheEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "placerank_cache_entries",
			Help: "Entries currently held by the listing cache",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(CacheLookups)
	prometheus.MustRegister(UpstreamRequests)
	prometheus.MustRegister(ListDuration)
	prometheus.MustRegister(CacheEntries)
}

func Register(mux *http.ServeMux) {
	mux.Handle("GET /metrics", promhttp.Handler())
}
