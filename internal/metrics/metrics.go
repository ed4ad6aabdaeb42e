// metrics — prometheus-коллектор photo-feed: пропагация снапшотов,
// операции Counter Ledger и события change stream.
// Все методы безопасны для nil-получателя: сервис и диспетчер работают и без метрик.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "photofeed"

// Результаты для меток result.
const (
	ResultOK      = "ok"
	ResultSkipped = "skipped"
	ResultError   = "error"
	ResultRetried = "retried"
	ResultFailed  = "failed"
)

// Collector реализует prometheus.Collector.
type Collector struct {
	propagations        *prometheus.CounterVec
	propagationDuration prometheus.Histogram
	propagatedDocs      *prometheus.CounterVec
	ledgerOps           *prometheus.CounterVec
	triggerEvents       *prometheus.CounterVec
}

// New создаёт коллектор. Регистрация — через prometheus.Registerer.MustRegister.
func New() *Collector {
	return &Collector{
		propagations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagations_total",
				Help:      "Profile propagations by result.",
			}, []string{"result"},
		),
		propagationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "propagation_duration_seconds",
				Help:      "Time spent rewriting embedded profile snapshots.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		propagatedDocs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "propagated_documents_total",
				Help:      "Documents whose embedded profile snapshot was rewritten.",
			}, []string{"collection"},
		),
		ledgerOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_operations_total",
				Help:      "Counter ledger operations by operation and result.",
			}, []string{"op", "result"},
		),
		triggerEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trigger_events_total",
				Help:      "User change events handled by the trigger dispatcher.",
			}, []string{"result"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.propagations.Describe(ch)
	c.propagationDuration.Describe(ch)
	c.propagatedDocs.Describe(ch)
	c.ledgerOps.Describe(ch)
	c.triggerEvents.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.propagations.Collect(ch)
	c.propagationDuration.Collect(ch)
	c.propagatedDocs.Collect(ch)
	c.ledgerOps.Collect(ch)
	c.triggerEvents.Collect(ch)
}

// Propagation учитывает один вызов пропагации.
func (c *Collector) Propagation(result string, d time.Duration) {
	if c == nil {
		return
	}

	c.propagations.WithLabelValues(result).Inc()
	if result != ResultSkipped {
		c.propagationDuration.Observe(d.Seconds())
	}
}

// Propagated добавляет n переписанных документов коллекции.
func (c *Collector) Propagated(collection string, n int64) {
	if c == nil || n <= 0 {
		return
	}

	c.propagatedDocs.WithLabelValues(collection).Add(float64(n))
}

// LedgerOp учитывает операцию Counter Ledger.
func (c *Collector) LedgerOp(op string, err error) {
	if c == nil {
		return
	}

	result := ResultOK
	if err != nil {
		result = ResultError
	}

	c.ledgerOps.WithLabelValues(op, result).Inc()
}

// TriggerEvent учитывает событие диспетчера.
func (c *Collector) TriggerEvent(result string) {
	if c == nil {
		return
	}

	c.triggerEvents.WithLabelValues(result).Inc()
}
