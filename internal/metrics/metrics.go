// Package metrics provides Prometheus collectors for the bridge client.
//
// Collectors are package-level and registered once with Register; recording
// helpers are safe to call before registration (values are simply not exported).
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bridge"

var (
	selectorOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "operations_total",
			Help:      "Selector operations applied, by operation",
		},
		[]string{"operation"},
	)

	walletEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "events_total",
			Help:      "Wallet connection changes delivered to sessions",
		},
		[]string{"kind", "connected"},
	)

	sessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Open selector sessions",
		},
	)

	proceedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "proceed_total",
			Help:      "Proceed attempts, by result",
		},
		[]string{"result"},
	)
)

// Proceed results.
const (
	ProceedOK      = "ok"
	ProceedBlocked = "blocked"
	ProceedFailed  = "failed"
)

func RecordOperation(op string) {
	selectorOperationsTotal.WithLabelValues(op).Inc()
}

func RecordWalletEvent(kind string, connected bool) {
	walletEventsTotal.WithLabelValues(kind, strconv.FormatBool(connected)).Inc()
}

func SessionOpened() { sessionsActive.Inc() }

func SessionClosed() { sessionsActive.Dec() }

func RecordProceed(result string) {
	proceedTotal.WithLabelValues(result).Inc()
}
