// Package redis opens go-redis clients from connection URLs, with pooling
// defaults and startup retry. The rediskv store accepts any
// redis.UniversalClient; this package is the standard way to construct one.
package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyConnectionURL is returned when no URL is supplied.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")

	// ErrFailedToParseURL is returned for URLs that are not redis:// or
	// rediss:// or that go-redis cannot parse.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")

	// ErrConnectionFailed is returned when no connection could be
	// established within the retry budget.
	ErrConnectionFailed = errors.New("redis: failed to establish connection")
)

// Option configures a connection.
type Option func(*options)

type options struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      10,
		retryAttempts: 3,
		retryInterval: 5 * time.Second,
	}
}

// WithPoolSize sets the maximum number of pooled connections.
// Default: 10.
func WithPoolSize(n int) Option {
	return func(o *options) {
		o.poolSize = n
	}
}

// WithRetry configures startup retry behavior.
// Default: 3 attempts, 5 second base interval with linear backoff.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// Open creates a Redis client. Supports redis:// and rediss:// (TLS) URLs.
//
// Example:
//
//	client, err := redis.Open(ctx, "redis://localhost:6379/0",
//	    redis.WithPoolSize(20),
//	)
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}
	redisOpts.PoolSize = o.poolSize

	attempts := max(o.retryAttempts, 1)
	for i := range attempts {
		client := redis.NewClient(redisOpts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * o.retryInterval):
		}
	}
	return nil, ErrConnectionFailed
}
