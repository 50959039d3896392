package gcalendar

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

const (
	defaultReadAttempts = 3
	defaultReadDelay    = 500 * time.Millisecond
)

// Lister is the read side of Client.
type Lister interface {
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

// RetryingLister retries event listing with exponential backoff. Writes are
// never retried since a lost response would duplicate the event.
type RetryingLister struct {
	inner Lister
	cfg   retry.Config
}

// NewRetryingLister wraps inner. attempts <= 0 means 3.
func NewRetryingLister(inner Lister, attempts int) *RetryingLister {
	if attempts <= 0 {
		attempts = defaultReadAttempts
	}
	return &RetryingLister{
		inner: inner,
		cfg: retry.Config{
			MaxAttempts:   attempts,
			InitialDelay:  defaultReadDelay,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

func (r *RetryingLister) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	return retry.New[[]Event](r.cfg).Do(ctx, func(ctx context.Context) ([]Event, error) {
		return r.inner.ListEvents(ctx, req)
	})
}
