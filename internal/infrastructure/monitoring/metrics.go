package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates the auction business counters. A nil *Metrics is a
// valid no-op receiver so tests can skip registration entirely.
type Metrics struct {
	bidsAccepted    prometheus.Counter
	bidsRejected    *prometheus.CounterVec
	itemsCreated    prometheus.Counter
	storeRecoveries prometheus.Counter
	httpDuration    *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		bidsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "auction_bids_accepted_total",
			Help: "Accepted bids.",
		}),
		bidsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "auction_bids_rejected_total",
			Help: "Rejected bids by reason.",
		}, []string{"reason"}),
		itemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "auction_items_created_total",
			Help: "Items created through the API.",
		}),
		storeRecoveries: factory.NewCounter(prometheus.CounterOpts{
			Name: "auction_store_recoveries_total",
			Help: "Times the item store recovered to an empty set from a missing or corrupt file.",
		}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) BidAccepted() {
	if m == nil {
		return
	}
	m.bidsAccepted.Inc()
}

func (m *Metrics) BidRejected(reason string) {
	if m == nil {
		return
	}
	m.bidsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ItemCreated() {
	if m == nil {
		return
	}
	m.itemsCreated.Inc()
}

func (m *Metrics) StoreRecovered() {
	if m == nil {
		return
	}
	m.storeRecoveries.Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}
