package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is registered once in main; a nil *Metrics disables recording.
type Metrics struct {
	settlementsTotal          *prometheus.CounterVec
	settlementAmount          *prometheus.CounterVec
	gatewayNotificationsTotal *prometheus.CounterVec
	retryRunsTotal            prometheus.Counter
	retriesQueuedTotal        prometheus.Counter
	retryLastRunUnix          prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		settlementsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "casino_ledger",
				Subsystem: "settlement",
				Name:      "operations_total",
				Help:      "Settlement operations partitioned by transaction type and result.",
			},
			[]string{"type", "result"},
		),
		settlementAmount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "casino_ledger",
				Subsystem: "settlement",
				Name:      "amount_total",
				Help:      "Sum of settled amounts partitioned by transaction type.",
			},
			[]string{"type"},
		),
		gatewayNotificationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "casino_ledger",
				Subsystem: "gateway",
				Name:      "notifications_total",
				Help:      "Gateway notifications partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		retryRunsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "casino_ledger",
				Subsystem: "retry_worker",
				Name:      "runs_total",
				Help:      "Total retry worker runs.",
			},
		),
		retriesQueuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "casino_ledger",
				Subsystem: "retry_worker",
				Name:      "queued_total",
				Help:      "Total failed deposits re-queued for retry.",
			},
		),
		retryLastRunUnix: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "casino_ledger",
				Subsystem: "retry_worker",
				Name:      "last_run_unix",
				Help:      "Unix time of the most recent retry worker run.",
			},
		),
	}
}

func (m *Metrics) ObserveSettlement(txType, result string, amount float64) {
	if m == nil {
		return
	}
	m.settlementsTotal.WithLabelValues(txType, result).Inc()
	if result == "success" {
		m.settlementAmount.WithLabelValues(txType).Add(amount)
	}
}

func (m *Metrics) ObserveGatewayNotification(outcome string) {
	if m == nil {
		return
	}
	m.gatewayNotificationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRetryRun(queued int, at int64) {
	if m == nil {
		return
	}
	m.retryRunsTotal.Inc()
	m.retriesQueuedTotal.Add(float64(queued))
	m.retryLastRunUnix.Set(float64(at))
}
