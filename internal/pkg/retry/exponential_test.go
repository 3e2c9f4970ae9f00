package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/logger"
)

func testRetrier(maxRetries int, retryable func(error) bool) *Retrier {
	cfg := Config{
		MaxRetries:    maxRetries,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Multiplier:    2.0,
		RetryableFunc: retryable,
	}
	if cfg.RetryableFunc == nil {
		cfg.RetryableFunc = func(error) bool { return true }
	}
	return New(cfg, logger.GetGlobalLogger())
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r := testRetrier(3, nil)

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrier_ExhaustsAttempts(t *testing.T) {
	r := testRetrier(2, nil)

	failure := errors.New("still down")
	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 3, attempts)
}

func TestRetrier_NonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("bad request")
	r := testRetrier(5, func(err error) bool {
		return !errors.Is(err, fatal)
	})

	attempts := 0
	err := r.Execute(context.Background(), func(context.Context) error {
		attempts++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, attempts)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := testRetrier(5, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Execute(ctx, func(context.Context) error {
		return errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
