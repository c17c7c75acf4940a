// Package metrics holds the Prometheus collectors for timers and tickers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for ControllersFinished.
const (
	OutcomeExpired = "expired"
	OutcomeStopped = "stopped"
	OutcomeFault   = "fault"
)

// Reason label values for PoolRejections.
const (
	ReasonSaturated = "saturated"
	ReasonClosed    = "closed"
)

var (
	ControllersStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticker_controllers_started_total",
		Help: "Total number of controllers whose schedule loop was started, by kind.",
	}, []string{"kind"})
	ControllersFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticker_controllers_finished_total",
		Help: "Total number of controllers that reached a terminal state, by kind and outcome.",
	}, []string{"kind", "outcome"})
	SignalsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticker_signals_emitted_total",
		Help: "Total number of instants pushed to waiters, by kind.",
	}, []string{"kind"})
	ActiveLoops = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ticker_active_loops",
		Help: "Number of schedule loops currently running in a pool.",
	})
	PoolRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ticker_pool_rejections_total",
		Help: "Total number of schedule loops refused by a pool, by reason.",
	}, []string{"reason"})
)
