package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stayfinder", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stayfinder", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stayfinder", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	IntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stayfinder", Name: "assistant_intents_total", Help: "Classified assistant intents."},
		[]string{"intent", "lang"},
	)
	// Store failures are invisible in replies (they degrade to "no hotels
	// found"), so this counter is the only place they surface.
	StoreUnavailable = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "stayfinder", Name: "assistant_store_unavailable_total", Help: "Hotel store failures degraded to empty results."},
	)
)

// Serve starts the auxiliary metrics listener when METRICS_ADDR is set. It
// serves the same registry the API mounts at /metrics; the default registry
// would only carry Go runtime series.
func Serve(reg *prometheus.Registry) {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, IntentsTotal, StoreUnavailable)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveIntent(intent, lang string) {
	IntentsTotal.WithLabelValues(intent, lang).Inc()
}

func ObserveStoreUnavailable() {
	StoreUnavailable.Inc()
}
