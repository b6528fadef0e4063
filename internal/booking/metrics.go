package booking

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const InstrumentationName = "github.com/metinatakli/theater-box-office/internal/booking"

// Metrics records reservation attempts and commit latency, both labelled by outcome.
// A nil *Metrics records nothing.
type Metrics struct {
	attempts       metric.Int64Counter
	commitDuration metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	attempts, err := meter.Int64Counter(
		"booking.reservation.attempts",
		metric.WithDescription("Reservation attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	commitDuration, err := meter.Float64Histogram(
		"booking.reservation.commit.duration",
		metric.WithDescription("Duration of the reservation commit transaction"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		attempts:       attempts,
		commitDuration: commitDuration,
	}, nil
}

func (m *Metrics) recordAttempt(ctx context.Context, err error) {
	if m == nil {
		return
	}

	m.attempts.Add(ctx, 1, metric.WithAttributes(outcomeAttr(err)))
}

func (m *Metrics) recordCommit(ctx context.Context, elapsed time.Duration, err error) {
	if m == nil {
		return
	}

	m.commitDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(outcomeAttr(err)))
}

func outcomeAttr(err error) attribute.KeyValue {
	return attribute.String("outcome", Outcome(err))
}
