package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Operation results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
)

// BookMetrics holds the address book Prometheus collectors.
type BookMetrics struct {
	OperationsTotal *prometheus.CounterVec
	Contacts        prometheus.Gauge
	Phones          prometheus.Gauge
}

// NewBookMetrics creates unregistered collectors under the given namespace.
func NewBookMetrics(namespace string) *BookMetrics {
	return &BookMetrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of address book operations",
			},
			[]string{"operation", "result"},
		),
		Contacts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contacts",
			Help:      "Number of contacts in the address book",
		}),
		Phones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phones",
			Help:      "Number of phone numbers across all contacts",
		}),
	}
}

// Register registers all collectors. Must be called once from main.
func (m *BookMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.OperationsTotal, m.Contacts, m.Phones} {
		if err := reg.Register(c); err != nil {
			return fmt.Errorf("register book metrics: %w", err)
		}
	}
	return nil
}

// ObserveOperation counts a finished operation.
func (m *BookMetrics) ObserveOperation(operation, result string) {
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetSize updates the contact and phone gauges.
func (m *BookMetrics) SetSize(contacts, phones int) {
	m.Contacts.Set(float64(contacts))
	m.Phones.Set(float64(phones))
}
