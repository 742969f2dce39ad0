package observe

import (
	"github.com/google/uuid"

	"github.com/vladdou/rangekit/cursor"
	"github.com/vladdou/rangekit/logger"
)

// WithLogging returns a sequence whose traversals log every cursor movement
// at debug level. Each Begin call tags its cursors with a fresh traversal ID
// for correlation.
func WithLogging[T any](s cursor.Sequence[T], log *logger.Logger) cursor.Sequence[T] {
	log = log.WithComponent("observe")
	return &observedSeq[T]{
		inner: s,
		onBegin: func() *traversal[T] {
			l := log.WithFields(logger.Fields(logger.FieldTraversalID, uuid.NewString()))
			l.Debug("traversal started")
			return &traversal[T]{
				step: func(op string, n int64) {
					l.Debug("cursor moved", logger.Fields(
						logger.FieldOperation, op,
						logger.FieldSteps, n,
					))
				},
			}
		},
	}
}
