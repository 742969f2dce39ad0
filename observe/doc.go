// Package observe provides sequence decorators for traversal observability.
//
// Decorators wrap a cursor.Sequence and return one whose cursors record
// what traversal does, without changing traversal semantics. The decorated
// cursors keep the capability tier of the originals, so a decorated
// random-access sequence still advances in O(1) and still zips as
// random-access.
//
// Logging:
//
//	log := logger.New(os.Stderr, &logger.Config{Level: "debug"})
//	s := observe.WithLogging(cursor.FromSlice(items), log)
//
// Every Begin call tags the traversal with a fresh UUID and logs each
// cursor step at debug level.
//
// Metrics:
//
//	m, err := observe.NewMetrics(otel.Meter("rangekit"))
//	s := observe.WithMetrics(cursor.FromSlice(items), m)
//
// Steps are counted per operation (next, prev, advance) on OpenTelemetry
// counters. Counters are monotonic; a backward advance counts the number of
// positions crossed, not a negative delta.
//
// Tracing:
//
//	s := observe.WithTracing(cursor.FromSlice(items), otel.Tracer("rangekit"))
//
// Each Begin call opens a span that ends the first time the traversal rests
// on end, carrying the total positions moved as traversal.steps.
//
// Decorated cursors are read-only views: the Writable capability of the
// underlying cursors is not forwarded.
package observe
