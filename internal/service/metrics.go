package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsUseCaseObserver records use-case counts and latencies as Prometheus
// metrics.
type MetricsUseCaseObserver struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsUseCaseObserver registers the use-case metrics on reg.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (*MetricsUseCaseObserver, error) {
	m := &MetricsUseCaseObserver{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "herdbook",
			Name:      "use_case_total",
			Help:      "Service use cases executed, by outcome.",
		}, []string{"use_case", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "herdbook",
			Name:      "use_case_duration_seconds",
			Help:      "Service use-case latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"use_case"}),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	m.calls.WithLabelValues(event.Name, outcomeLabel(event.Err)).Inc()
	m.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// outcomeLabel keeps label cardinality bounded by mapping errors onto the
// domain sentinels.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrMissingRequiredField):
		return "missing_field"
	case errors.Is(err, domain.ErrInvalidDateOrder):
		return "invalid_date_order"
	case errors.Is(err, domain.ErrAlreadyBorn):
		return "already_born"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrOpenPregnancyExists):
		return "open_pregnancy_exists"
	case errors.Is(err, domain.ErrUnknownSpecies):
		return "unknown_species"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	}
	return "error"
}
