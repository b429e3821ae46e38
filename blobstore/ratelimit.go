package blobstore

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Store and throttles operations through a shared
// limiter. Useful against remote backends with request quotas.
type RateLimited struct {
	inner   Store
	limiter *rate.Limiter
}

// NewRateLimited creates a rate-limited view of inner.
// opsPerSec limits store operations (not bytes); burst defaults to 1 if <= 0.
func NewRateLimited(inner Store, opsPerSec float64, burst int) *RateLimited {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(opsPerSec), burst),
	}
}

func (s *RateLimited) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Open(ctx, name)
}

func (s *RateLimited) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.Create(ctx, name)
}

func (s *RateLimited) Stat(ctx context.Context, name string) (int64, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return s.inner.Stat(ctx, name)
}

func (s *RateLimited) List(ctx context.Context, prefix string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.List(ctx, prefix)
}
