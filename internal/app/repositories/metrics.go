package repositories

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Operation outcomes reported on the operations counter
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeAlreadyExists = "already_exists"
	OutcomeInvalid       = "invalid"
	OutcomeError         = "error"
)

// Metrics holds the Prometheus collectors shared by the in-memory stores.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations *prometheus.CounterVec
	records    *prometheus.GaugeVec
}

// NewMetrics creates the store collectors and registers them with reg.
// Passing nil uses a private registry, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "registrar",
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Store operations by store, operation and outcome",
			},
			[]string{"store", "operation", "outcome"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "registrar",
				Subsystem: "store",
				Name:      "records",
				Help:      "Number of primary records held by each store",
			},
			[]string{"store"},
		),
	}
}

// observe counts one operation, classifying err into an outcome label
func (m *Metrics) observe(store, operation string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(store, operation, outcomeOf(err)).Inc()
}

// setRecords publishes the current primary table size of a store
func (m *Metrics) setRecords(store string, n int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(store).Set(float64(n))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return OutcomeAlreadyExists
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrInvalidTransition):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
