package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"

	"kuantum/internal/game"
	"kuantum/internal/models"
)

// Collector exports the run's state as Prometheus metrics. The game loop
// calls Observe after every applied command; gauges track the latest
// snapshot and counters track cumulative totals.
type Collector struct {
	registry *prometheus.Registry

	day          prometheus.Gauge
	score        prometheus.Gauge
	satisfaction prometheus.Gauge
	stability    prometheus.Gauge
	resources    *prometheus.GaugeVec
	activeOrders prometheus.Gauge

	completedTotal prometheus.Gauge
	failedTotal    prometheus.Gauge
	eventsTotal    *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		day: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_day",
			Help: "Current game day",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_score",
			Help: "Current run score",
		}),
		satisfaction: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_customer_satisfaction_percent",
			Help: "Customer satisfaction meter",
		}),
		stability: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_reality_stability_percent",
			Help: "Reality stability meter",
		}),
		resources: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kitchen_resource_balance",
			Help: "Resource balances by kind",
		}, []string{"resource"}),
		activeOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_active_orders",
			Help: "Orders currently active",
		}),
		completedTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_orders_completed_total",
			Help: "Orders delivered over the run",
		}),
		failedTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kitchen_orders_failed_total",
			Help: "Orders expired or abandoned over the run",
		}),
		eventsTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "kitchen_special_events_total",
			Help: "Special events fired over the run, by kind",
		}, []string{"event"}),
	}

	c.registry.MustRegister(
		c.day, c.score, c.satisfaction, c.stability,
		c.resources, c.activeOrders,
		c.completedTotal, c.failedTotal, c.eventsTotal,
	)
	return c
}

// Registry returns the collector's Prometheus registry for promhttp.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe updates every metric from a status snapshot.
func (c *Collector) Observe(snap game.StatusSnapshot) {
	c.day.Set(float64(snap.Day))
	c.score.Set(float64(snap.Score))
	c.satisfaction.Set(float64(snap.Satisfaction))
	c.stability.Set(float64(snap.Stability))
	c.activeOrders.Set(float64(len(snap.Active)))
	c.completedTotal.Set(float64(snap.Completed))
	c.failedTotal.Set(float64(snap.Failed))

	for kind, amount := range snap.Resources {
		c.resources.WithLabelValues(string(kind)).Set(float64(amount))
	}

	counts := make(map[models.EventType]int)
	for _, event := range snap.Events {
		counts[event.Type]++
	}
	for _, kind := range models.AllEvents {
		c.eventsTotal.WithLabelValues(string(kind)).Set(float64(counts[kind]))
	}
}
