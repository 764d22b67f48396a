package ports

import (
	"context"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// EventSource delivers accessibility samples in capture order. The channel
// closes when the source is exhausted or the context is cancelled.
type EventSource interface {
	Stream(ctx context.Context) (<-chan domain.Sample, error)
}
