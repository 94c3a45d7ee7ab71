package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesTotal counts calculator requests by service tier and outcome.
	QuotesTotal *prometheus.CounterVec
	// QuoteTotalPrice records the total price of successful quotes.
	QuoteTotalPrice *prometheus.HistogramVec
	// LeadsTotal counts lead submissions by form and outcome.
	LeadsTotal *prometheus.CounterVec
	// LeadNotifyFailures counts notifier errors while relaying leads.
	LeadNotifyFailures prometheus.Counter
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		QuotesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Count of shipping cost calculations by tier and outcome.",
		}, []string{"tier", "result"})
		QuoteTotalPrice = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_total_price",
			Help:      "Distribution of quoted total prices in currency units.",
			Buckets:   []float64{1500, 5000, 10000, 25000, 50000, 100000, 250000, 500000},
		}, []string{"tier"})
		LeadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leads_total",
			Help:      "Count of lead form submissions by source and outcome.",
		}, []string{"source", "result"})
		LeadNotifyFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lead_notify_failures_total",
			Help:      "Number of lead notifier errors.",
		})

		QuotesTotal = registerOrReuse(reg, QuotesTotal)
		QuoteTotalPrice = registerOrReuse(reg, QuoteTotalPrice)
		LeadsTotal = registerOrReuse(reg, LeadsTotal)
		LeadNotifyFailures = registerOrReuse(reg, LeadNotifyFailures)
	})
}

// ObserveQuote records a calculator outcome. It is a no-op until the domain
// metrics are registered.
func ObserveQuote(tier, result string, total float64) {
	if QuotesTotal == nil {
		return
	}
	QuotesTotal.WithLabelValues(tier, result).Inc()
	if result == "ok" && QuoteTotalPrice != nil {
		QuoteTotalPrice.WithLabelValues(tier).Observe(total)
	}
}

// ObserveLead records a lead submission outcome.
func ObserveLead(source, result string) {
	if LeadsTotal == nil {
		return
	}
	LeadsTotal.WithLabelValues(source, result).Inc()
}

// ObserveLeadNotifyFailure increments the notifier failure counter.
func ObserveLeadNotifyFailure() {
	if LeadNotifyFailures == nil {
		return
	}
	LeadNotifyFailures.Inc()
}
