package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vladdou/rangekit/cursor"
)

// Metrics holds OpenTelemetry metric instruments for traversal
// observability.
type Metrics struct {
	traversalTotal metric.Int64Counter
	stepTotal      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	traversalTotal, err := meter.Int64Counter("traversal.total",
		metric.WithDescription("Total number of traversals started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating traversal.total counter: %w", err)
	}

	stepTotal, err := meter.Int64Counter("cursor.step.total",
		metric.WithDescription("Total cursor positions moved, by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cursor.step.total counter: %w", err)
	}

	return &Metrics{
		traversalTotal: traversalTotal,
		stepTotal:      stepTotal,
	}, nil
}

// WithMetrics returns a sequence whose cursors record traversal starts and
// step counts on m.
func WithMetrics[T any](s cursor.Sequence[T], m *Metrics) cursor.Sequence[T] {
	return &observedSeq[T]{
		inner: s,
		onBegin: func() *traversal[T] {
			m.traversalTotal.Add(context.Background(), 1)
			return &traversal[T]{
				step: func(op string, n int64) {
					m.stepTotal.Add(context.Background(), n, metric.WithAttributes(
						attribute.String("operation", op),
					))
				},
			}
		},
	}
}
