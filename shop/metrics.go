package shop

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nanostock"

// Metrics are the Prometheus collectors updated by a Shop.
type Metrics struct {
	itemsAdded    *prometheus.CounterVec
	itemsRemoved  *prometheus.CounterVec
	emptyRemovals *prometheus.CounterVec
	itemsHeld     *prometheus.GaugeVec
	soldCodes     prometheus.Gauge
	vendors       prometheus.Gauge
}

// NewMetrics creates the shop collectors and registers them with reg.
// It panics if registration fails.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		itemsAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "items_added_total",
				Help:      "Items added to the inventory store",
			},
			[]string{"category", "discipline"},
		),
		itemsRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "items_removed_total",
				Help:      "Items removed from the inventory store",
			},
			[]string{"category", "discipline"},
		),
		emptyRemovals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "empty_removals_total",
				Help:      "Removals attempted on an empty LIFO or FIFO container",
			},
			[]string{"category"},
		),
		itemsHeld: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "items_held",
				Help:      "Items currently held per category",
			},
			[]string{"category"},
		),
		soldCodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sold_codes",
			Help:      "Distinct product codes marked sold",
		}),
		vendors: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vendors",
			Help:      "Registered vendors",
		}),
	}
	reg.MustRegister(
		m.itemsAdded,
		m.itemsRemoved,
		m.emptyRemovals,
		m.itemsHeld,
		m.soldCodes,
		m.vendors,
	)
	return m
}
