package composer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"
)

// RetryPolicy configures how a failed install is repeated.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int

	// BaseDelay is the wait before the first retry; it doubles per attempt.
	BaseDelay time.Duration

	// MaxDelay caps the wait between attempts.
	MaxDelay time.Duration

	// UseJitter scales each wait by a random factor in [0.5, 1.5).
	UseJitter bool
}

// DefaultRetryPolicy waits two seconds before the first of retries repeated
// installs. Most install failures are network errors while downloading.
func DefaultRetryPolicy(retries int) RetryPolicy {
	return RetryPolicy{
		MaxRetries: retries,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		UseJitter:  true,
	}
}

// RetryInstaller repeats failed installs of the wrapped Installer.
type RetryInstaller struct {
	inner  Installer
	policy RetryPolicy
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRetryInstaller wraps inner with policy.
func NewRetryInstaller(inner Installer, policy RetryPolicy, logger *slog.Logger) *RetryInstaller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RetryInstaller{inner: inner, policy: policy, logger: logger, sleep: sleepContext}
}

// Install runs the wrapped installer until it succeeds, the retries are
// used up, or the error is not worth retrying. A missing Composer binary
// and context cancellation are never retried.
func (r *RetryInstaller) Install(ctx context.Context, dir string) error {
	var lastErr error
	for attempt := range r.policy.MaxRetries + 1 {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.inner.Install(ctx, dir)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == r.policy.MaxRetries {
			break
		}

		delay := CalculateBackoff(attempt, r.policy.BaseDelay, r.policy.MaxDelay, r.policy.UseJitter)
		r.logger.Warn("composer install failed, retrying", "attempt", attempt+1, "delay", delay, "error", err)
		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}
	return lastErr
}

// CalculateBackoff returns the exponential delay for a zero-based attempt.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if useJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	return min(delay, maxDelay)
}

func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrInstallFailed)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
