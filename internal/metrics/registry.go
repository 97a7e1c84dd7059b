package metrics

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quantumauth-io/quantum-go-utils/log"
)

// Register adds every bridge collector plus Go/process collectors to the
// default registry. Calling it twice is harmless.
func Register() {
	registerIfNotExists(collectors.NewGoCollector(), "go_collector")
	registerIfNotExists(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector")

	registerIfNotExists(selectorOperationsTotal, "selector_operations_total")
	registerIfNotExists(walletEventsTotal, "wallet_events_total")
	registerIfNotExists(sessionsActive, "sessions_active")
	registerIfNotExists(proceedTotal, "proceed_total")
	registerIfNotExists(httpRequestsTotal, "http_requests_total")
	registerIfNotExists(httpRequestDuration, "http_request_duration_seconds")
}

func registerIfNotExists(c prometheus.Collector, name string) {
	if err := prometheus.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return
		}
		log.Error("failed to register metric", "name", name, "error", err)
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
