package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StoreSnapshot is a point-in-time size of the game state
type StoreSnapshot struct {
	Users          int
	ActiveListings int
	Items          int
}

// RegisterStoreGauges exposes the store sizes as gauges evaluated on scrape.
func RegisterStoreGauges(reg prometheus.Registerer, snapshot func() StoreSnapshot) {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: MetricNameStoreUsers,
		Help: HelpTextStoreUsers,
	}, func() float64 { return float64(snapshot().Users) })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: MetricNameStoreActiveListings,
		Help: HelpTextStoreActiveListings,
	}, func() float64 { return float64(snapshot().ActiveListings) })

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: MetricNameStoreItems,
		Help: HelpTextStoreItems,
	}, func() float64 { return float64(snapshot().Items) })
}
