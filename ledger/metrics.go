package ledger

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
        Name: "ledger_transitions_total",
        Help: "Ledger state transitions by operation and outcome",
    }, []string{"operation", "outcome"})

    accrualCreditsTotal = promauto.NewCounter(prometheus.CounterOpts{
        Name: "ledger_accrual_credits_total",
        Help: "Daily income credits applied by the accrual sweep",
    })
)

func observe(operation string, err error) {
    outcome := "ok"
    if err != nil {
        outcome = "error"
    }
    transitionsTotal.WithLabelValues(operation, outcome).Inc()
}
