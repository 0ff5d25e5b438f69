package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"

	"github.com/docchat/docchat-be/types"
)

// RetryPolicy bounds how often a rate-limited embedding call is repeated.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 5,
	Delay:       10 * time.Second,
}

// RetryingEmbedder wraps an Embedder with a bounded retry on rate-limit
// failures. Any other error propagates immediately. The sleep function is
// injectable so retry behavior is testable without wall-clock delay.
type RetryingEmbedder struct {
	inner  Embedder
	policy RetryPolicy
	sleep  func(time.Duration)
}

func NewRetryingEmbedder(inner Embedder, policy RetryPolicy) *RetryingEmbedder {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy
	}
	return &RetryingEmbedder{
		inner:  inner,
		policy: policy,
		sleep:  time.Sleep,
	}
}

func (e *RetryingEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	var out []float32
	err := e.retry(ctx, func() error {
		var err error
		out, err = e.inner.EmbedQuery(ctx, text)
		return err
	})
	return out, err
}

func (e *RetryingEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	var out [][]float32
	err := e.retry(ctx, func() error {
		var err error
		out, err = e.inner.EmbedDocuments(ctx, texts)
		return err
	})
	return out, err
}

func (e *RetryingEmbedder) retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRateLimit(lastErr) {
			return lastErr
		}
		if attempt < e.policy.MaxAttempts {
			log.Warn().
				Int("attempt", attempt).
				Dur("delay", e.policy.Delay).
				Msg("embedding rate limited, retrying")
			e.sleep(e.policy.Delay)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return &types.RateLimitError{Attempts: e.policy.MaxAttempts, Err: lastErr}
}

// IsRateLimit reports whether err is a throttling rejection from the
// embedding provider, for either backend's error shape.
func IsRateLimit(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var googleErr *googleapi.Error
	if errors.As(err, &googleErr) {
		return googleErr.Code == http.StatusTooManyRequests
	}
	return errors.Is(err, types.ErrRateLimited)
}
