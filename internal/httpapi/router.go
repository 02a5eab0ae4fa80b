package httpapi

import (
	"log"
	"net/http"

	"github.com/bayneri/boxoffice/internal/observability"
)

// NewHandler wires the service routes. metrics may be nil.
func NewHandler(logger *log.Logger, metrics *observability.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/v1/tiers", HandleTiers())

	var handler http.Handler = mux
	if metrics != nil {
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/v1/estimates", HandleEstimate(metrics))
		handler = Instrument(mux, metrics)
	} else {
		mux.HandleFunc("/v1/estimates", HandleEstimate(nil))
	}
	mux.Handle("/", NotFoundHandler())

	return RequestID(RequestLogger(handler, logger))
}
