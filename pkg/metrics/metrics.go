package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters for the auth and notification paths.
type Metrics struct {
	Logins                *prometheus.CounterVec
	TokenRenewals         *prometheus.CounterVec
	SessionsEvicted       prometheus.Counter
	NotificationsUpserted *prometheus.CounterVec
}

// Init registers and returns the process metrics. Call once at startup.
func Init() *Metrics {
	m := &Metrics{
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azura_logins_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		TokenRenewals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azura_token_renewals_total",
				Help: "Total number of access token renewal attempts by outcome",
			},
			[]string{"outcome"},
		),
		SessionsEvicted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "azura_sessions_evicted_total",
				Help: "Total number of expired sessions reclaimed",
			},
		),
		NotificationsUpserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azura_notifications_upserted_total",
				Help: "Total number of notification upserts by outcome",
			},
			[]string{"outcome"},
		),
	}

	prometheus.MustRegister(m.Logins)
	prometheus.MustRegister(m.TokenRenewals)
	prometheus.MustRegister(m.SessionsEvicted)
	prometheus.MustRegister(m.NotificationsUpserted)

	return m
}

// NewNop returns unregistered metrics for use in tests.
func NewNop() *Metrics {
	return &Metrics{
		Logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_logins_total"}, []string{"outcome"}),
		TokenRenewals: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_token_renewals_total"}, []string{"outcome"}),
		SessionsEvicted: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "nop_sessions_evicted_total"}),
		NotificationsUpserted: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_notifications_upserted_total"}, []string{"outcome"}),
	}
}
