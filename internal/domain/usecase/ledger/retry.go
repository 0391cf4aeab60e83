package ledger

import (
	"math/rand/v2"
	"time"
)

// RetryPolicy bounds how hard the writer tries before alerting an operator
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	JitterFactor    float64 // Fraction of the backoff added as random jitter (0.0-1.0)
}

// DefaultRetryPolicy returns the default retry policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     5,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		JitterFactor:    0.2,
	}
}

// backoff returns the wait before the retry following attempt (zero-based)
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.InitialInterval << uint(attempt)
	if wait <= 0 || wait > p.MaxInterval {
		wait = p.MaxInterval
	}

	if p.JitterFactor > 0 {
		wait += time.Duration(float64(wait) * p.JitterFactor * rand.Float64())
	}
	return wait
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}
