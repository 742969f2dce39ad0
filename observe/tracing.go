package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vladdou/rangekit/cursor"
)

// WithTracing returns a sequence that records a span per traversal. The span
// starts when Begin constructs the cursor and ends the first time the
// traversal rests on the end position, carrying the total number of
// positions moved as the traversal.steps attribute. A traversal abandoned
// before reaching end leaves its span unended.
func WithTracing[T any](s cursor.Sequence[T], tracer trace.Tracer) cursor.Sequence[T] {
	return &observedSeq[T]{
		inner: s,
		onBegin: func() *traversal[T] {
			_, span := tracer.Start(context.Background(), "traversal")
			var steps int64
			return &traversal[T]{
				step: func(_ string, n int64) { steps += n },
				end:  s.End(),
				onEnd: func() {
					span.SetAttributes(attribute.Int64("traversal.steps", steps))
					span.End()
				},
			}
		},
	}
}
