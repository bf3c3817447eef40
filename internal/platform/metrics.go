package platform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"MiniShop/pkg/kit"
)

// Metrics counts session activity. A nil *Metrics records nothing.
type Metrics struct {
	Commands  *prometheus.CounterVec
	CartItems prometheus.Gauge
	Checkouts prometheus.Counter
	Revenue   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: kit.Namespace,
				Name:      "commands_total",
				Help:      "Commands entered, by keyword",
			},
			[]string{"command"},
		),
		CartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: kit.Namespace,
			Name:      "cart_items",
			Help:      "Entries currently in the cart",
		}),
		Checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: kit.Namespace,
			Name:      "checkouts_total",
			Help:      "Successful checkouts",
		}),
		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: kit.Namespace,
			Name:      "revenue_total",
			Help:      "Sum of checkout totals",
		}),
	}

	reg.MustRegister(m.Commands, m.CartItems, m.Checkouts, m.Revenue)
	return m
}

func (m *Metrics) command(name string) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(name).Inc()
}

func (m *Metrics) cartSize(n int) {
	if m == nil {
		return
	}
	m.CartItems.Set(float64(n))
}

func (m *Metrics) checkout(total decimal.Decimal) {
	if m == nil {
		return
	}
	m.Checkouts.Inc()
	m.Revenue.Add(total.InexactFloat64())
}
