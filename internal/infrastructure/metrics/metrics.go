package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersCompleted prometheus.Counter
	TransferAmount     prometheus.Histogram
	TransferErrors     *prometheus.CounterVec

	// Account metrics
	AccountsRegistered prometheus.Counter
	DepositsCompleted  prometheus.Counter
	WithdrawalsDone    prometheus.Counter

	// Authentication metrics
	AuthAttempts   *prometheus.CounterVec
	ActiveSessions prometheus.Gauge

	// Security log metrics
	SecurityEvents *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransfersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_transfers_completed_total",
			Help: "Total number of completed transfers",
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "minibank_transfer_amount",
			Help:    "Transfer amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		AccountsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_accounts_registered_total",
			Help: "Total number of accounts created via signup",
		}),
		DepositsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_deposits_completed_total",
			Help: "Total number of completed deposits",
		}),
		WithdrawalsDone: promauto.NewCounter(prometheus.CounterOpts{
			Name: "minibank_withdrawals_completed_total",
			Help: "Total number of completed withdrawals",
		}),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_auth_attempts_total",
				Help: "Total authentication attempts by outcome",
			},
			[]string{"status"},
		),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "minibank_active_sessions",
			Help: "Current number of active sessions",
		}),

		SecurityEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minibank_security_events_total",
				Help: "Total security log entries by activity type and severity",
			},
			[]string{"activity_type", "severity"},
		),
	}
}
