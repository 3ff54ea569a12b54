package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// MarketplaceRequests — исходящие запросы к Marketplace API.
	MarketplaceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_requests_total",
			Help: "Outbound Marketplace API requests",
		},
		[]string{"op", "outcome"}, // op: authenticate|advertiser|fetch_stock|patch_stock; outcome: ok|rejected|unavailable|invalid_credentials|not_found
	)

	// TokenRefreshes — обновления bearer-токенов.
	TokenRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_refreshes_total",
			Help: "Marketplace token refresh attempts",
		},
		[]string{"result"}, // ok|error
	)

	// StockUpdates — операции обновления записей stock.
	StockUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_updates_total",
			Help: "Stock update operations",
		},
		[]string{"outcome"}, // ok|no_changes|invalid|error
	)

	// EventsPublished — best-effort события для смежных систем.
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_events_published_total",
			Help: "Stock update events published to Kafka",
		},
		[]string{"outcome"}, // ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // op: hit|miss|expired|evicted|refresh
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация метрик; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			MarketplaceRequests, TokenRefreshes, StockUpdates, EventsPublished,
			CacheOps, CacheSize,
		)
	})
}
