package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
)

var paymentsRecorded = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "receivable_payments_total",
		Help: "How many payments were applied to receivables.",
	},
)

var paymentAmount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "receivable_payment_amount_total",
		Help: "The sum of all payments applied to receivables.",
	},
)

var incomesConfirmed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "scheduled_incomes_confirmed_total",
		Help: "How many scheduled incomes were confirmed as received.",
	},
)

// Collectors returns the Prometheus metrics of the settlement engine.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		paymentsRecorded,
		paymentAmount,
		incomesConfirmed,
	}
}

func observePayments(results ...PaymentResult) {
	for _, r := range results {
		paymentsRecorded.Inc()
		paymentAmount.Add(r.Amount.InexactFloat64())
	}
}
