package util

import (
	"context"
	"errors"
)

// RetryErr runs fn until it succeeds or maxTries attempts have failed, and
// returns the last failure. At least one attempt is made.
func RetryErr(maxTries int, fn func() error) error {
	_, err := RetryWithContext(context.Background(), maxTries, func(context.Context) (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// RetryWithContext runs fn until it succeeds, maxTries attempts have failed
// or ctx is done. Context errors, from ctx or returned by fn, end the loop
// immediately.
func RetryWithContext[T any](ctx context.Context, maxTries int, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < max(maxTries, 1); attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		if isContextErr(err) {
			return zero, err
		}
		lastErr = err
	}
	return zero, lastErr
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
