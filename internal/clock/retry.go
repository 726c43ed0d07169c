package clock

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds exponential retries of a failing operation. Zero values fall back to the
// backoff package defaults; MaxRetries 0 means no retry cap.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
}

// Do runs op until it succeeds, returns a Permanent error, the policy is exhausted or ctx is done.
func (p RetryPolicy) Do(ctx context.Context, op func(context.Context) error) error {
	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		eb.MaxInterval = p.MaxInterval
	}
	if p.MaxElapsedTime > 0 {
		eb.MaxElapsedTime = p.MaxElapsedTime
	}

	var b backoff.BackOff = eb
	if p.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, p.MaxRetries)
	}
	return backoff.Retry(func() error { return op(ctx) }, backoff.WithContext(b, ctx))
}

// Permanent wraps err so Do stops retrying and returns err.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
