package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// QuotesTotal counts priced quotes by distance tier and rush-hour flag.
	QuotesTotal *prometheus.CounterVec
	// QuotesRejectedTotal counts quote requests rejected by validation, by reason.
	QuotesRejectedTotal *prometheus.CounterVec
	// FreeDeliveriesTotal counts quotes where the free-delivery override applied.
	FreeDeliveriesTotal prometheus.Counter
	// QuoteFeeCents records the distribution of quoted fees in minor units.
	QuoteFeeCents prometheus.Histogram
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
			Help:      "Count of priced delivery quotes.",
		}, []string{"tier", "rush"})
		QuotesRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_rejected_total",
			Help:      "Count of quote requests rejected by validation.",
		}, []string{"reason"})
		FreeDeliveriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "free_deliveries_total",
			Help:      "Number of quotes where the free-delivery override applied.",
		})
		QuoteFeeCents = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_fee_cents",
			Help:      "Distribution of quoted delivery fees in minor units.",
			Buckets:   []float64{0, 200, 300, 500, 750, 1000, 1500},
		})

		mustRegisterCollector(reg, QuotesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuotesTotal = v
			}
		})
		mustRegisterCollector(reg, QuotesRejectedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				QuotesRejectedTotal = v
			}
		})
		mustRegisterCollector(reg, FreeDeliveriesTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				FreeDeliveriesTotal = v
			}
		})
		mustRegisterCollector(reg, QuoteFeeCents, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				QuoteFeeCents = v
			}
		})
	})
}
