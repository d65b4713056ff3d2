package mexc

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    maxRetries,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

// TestWithRetry_TransportErrorRetried verifies transient transport
// failures are retried up to the cap.
func TestWithRetry_TransportErrorRetried(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), fastRetryConfig(3), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

// TestWithRetry_ExhaustsAttempts verifies the last error is returned
// once the retry budget runs out.
func TestWithRetry_ExhaustsAttempts(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), fastRetryConfig(2), func() error {
		attempts++
		return errors.New("dial tcp: connection refused")
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts) // initial attempt + 2 retries
}

// TestWithRetry_APIErrorNotRetried verifies a received non-success
// status is never retried, so a conversion cannot be duplicated.
func TestWithRetry_APIErrorNotRetried(t *testing.T) {
	attempts := 0
	apiErr := NewAPIError(http.StatusBadRequest, []byte("invalid asset"))
	err := withRetry(context.Background(), fastRetryConfig(3), func() error {
		attempts++
		return apiErr
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, apiErr, err)
}

// TestWithRetry_ContextCancelled verifies cancellation stops the loop.
func TestWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := withRetry(ctx, fastRetryConfig(3), func() error {
		return errors.New("should not matter")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestIsRetryableError covers the retryability split between transport
// errors, API statuses and context errors.
func TestIsRetryableError(t *testing.T) {
	assert.False(t, IsRetryableError(nil))
	assert.False(t, IsRetryableError(NewAPIError(http.StatusInternalServerError, []byte("oops"))))
	assert.False(t, IsRetryableError(context.Canceled))
	assert.False(t, IsRetryableError(context.DeadlineExceeded))
	assert.True(t, IsRetryableError(errors.New("read tcp: connection reset by peer")))
}

// TestCalculateDelay verifies exponential growth capped at MaxDelay.
func TestCalculateDelay(t *testing.T) {
	config := RetryConfig{
		MaxRetries:    5,
		InitialDelay:  time.Second,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}

	assert.Equal(t, time.Second, calculateDelay(0, config))
	assert.Equal(t, 2*time.Second, calculateDelay(1, config))
	assert.Equal(t, 4*time.Second, calculateDelay(2, config))
	assert.Equal(t, 5*time.Second, calculateDelay(3, config))
}
