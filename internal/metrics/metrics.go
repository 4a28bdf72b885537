package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counters holds the booking service Prometheus metrics. A nil *Counters
// is valid and records nothing.
type Counters struct {
	SessionsCreated   prometheus.Counter
	SessionsExpired   prometheus.Counter
	SessionsDestroyed prometheus.Counter
	SessionsSwept     prometheus.Counter
	LoginFailures     prometheus.Counter
	GateRejections    *prometheus.CounterVec
}

// NewCounters creates and registers the counters with the given registry.
func NewCounters(reg prometheus.Registerer) *Counters {
	c := &Counters{
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_sessions_created_total",
			Help: "Total number of sessions minted after login or registration.",
		}),
		SessionsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_sessions_expired_total",
			Help: "Total number of sessions evicted on lookup because they were stale.",
		}),
		SessionsDestroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_sessions_destroyed_total",
			Help: "Total number of sessions removed by logout.",
		}),
		SessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_sessions_swept_total",
			Help: "Total number of stale sessions removed by the background reaper.",
		}),
		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "booking_login_failures_total",
			Help: "Total number of rejected login attempts.",
		}),
		GateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_gate_rejections_total",
			Help: "Total number of requests short-circuited by an authorization gate.",
		}, []string{"gate"}),
	}

	reg.MustRegister(
		c.SessionsCreated,
		c.SessionsExpired,
		c.SessionsDestroyed,
		c.SessionsSwept,
		c.LoginFailures,
		c.GateRejections,
	)

	return c
}

func (c *Counters) RecordSessionCreated() {
	if c != nil {
		c.SessionsCreated.Inc()
	}
}

func (c *Counters) RecordSessionExpired() {
	if c != nil {
		c.SessionsExpired.Inc()
	}
}

func (c *Counters) RecordSessionDestroyed() {
	if c != nil {
		c.SessionsDestroyed.Inc()
	}
}

// RecordSessionsSwept adds n reaped sessions.
func (c *Counters) RecordSessionsSwept(n int) {
	if c != nil && n > 0 {
		c.SessionsSwept.Add(float64(n))
	}
}

func (c *Counters) RecordLoginFailure() {
	if c != nil {
		c.LoginFailures.Inc()
	}
}

// RecordGateRejection increments the rejection counter for the named gate.
func (c *Counters) RecordGateRejection(gate string) {
	if c != nil {
		c.GateRejections.WithLabelValues(gate).Inc()
	}
}
