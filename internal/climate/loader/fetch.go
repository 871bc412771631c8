package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/temperature-heatmap/internal/logger"
)

// retryPolicy bounds the extra attempts made after a failed dataset fetch.
// The wait doubles from base up to ceiling.
type retryPolicy struct {
	retries int
	base    time.Duration
	ceiling time.Duration
}

func (p retryPolicy) wait(attempt int) time.Duration {
	d := p.base << attempt
	if d <= 0 || d > p.ceiling {
		return p.ceiling
	}
	return d
}

// fetcher GETs the dataset body through a circuit breaker.
type fetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	policy  retryPolicy
}

func newFetcher(client *http.Client, retries int) *fetcher {
	return &fetcher{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "dataset",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
		}),
		policy: retryPolicy{
			retries: retries,
			base:    500 * time.Millisecond,
			ceiling: 5 * time.Second,
		},
	}
}

// get returns the body served at url. Only rate limiting, server errors and
// transport failures are retried; any other status fails at once.
func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	if f.client == nil {
		return nil, errNoHTTPClient
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		body, err := f.once(ctx, url)
		if err == nil {
			return body, nil
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		if attempt >= f.policy.retries || errors.Is(err, errUnexpected) {
			return nil, err
		}

		wait := f.policy.wait(attempt)
		logger.GetLogger().Warnw("Dataset fetch failed, retrying", "url", url, "attempt", attempt+1, "wait", wait, "error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (f *fetcher) once(ctx context.Context, url string) ([]byte, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if err := statusError(resp.StatusCode); err != nil {
			return nil, err
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests:
		return errRateLimited
	case code >= 500:
		return fmt.Errorf("%w: %d", errServerError, code)
	default:
		return fmt.Errorf("%w: %d", errUnexpected, code)
	}
}
