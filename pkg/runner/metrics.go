package runner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stateRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whybecause_state_runs_total",
			Help: "Total number of state actions executed",
		},
		[]string{"flow_id"},
	)
	transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whybecause_transitions_total",
			Help: "Total number of transitions applied",
		},
		[]string{"flow_id"},
	)
)
