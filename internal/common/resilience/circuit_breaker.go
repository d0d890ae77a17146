package resilience

import (
	"context"
	"sync/atomic"
	"time"

	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

// CircuitBreaker opens after Threshold consecutive failures and rejects calls
// until ResetAfter has passed since the last failure.
type CircuitBreaker struct {
	failures    atomic.Int32
	lastFailure atomic.Value
	threshold   int32
	timeout     time.Duration
	resetAfter  time.Duration
	name        string
	isFailure   func(error) bool
	now         func() time.Time
	log         *logger.Logger
}

type CircuitBreakerConfig struct {
	Threshold  int32
	Timeout    time.Duration
	ResetAfter time.Duration
	Name       string
	// IsFailure reports whether err counts against the breaker. Nil counts
	// every non-nil error.
	IsFailure func(error) bool
	Now       func() time.Time
	Logger    *logger.Logger
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	cb := &CircuitBreaker{
		threshold:  config.Threshold,
		timeout:    config.Timeout,
		resetAfter: config.ResetAfter,
		name:       config.Name,
		isFailure:  config.IsFailure,
		now:        config.Now,
		log:        config.Logger,
	}
	if cb.isFailure == nil {
		cb.isFailure = func(err error) bool { return err != nil }
	}
	if cb.now == nil {
		cb.now = time.Now
	}
	cb.lastFailure.Store(time.Time{})
	return cb
}

func (cb *CircuitBreaker) IsOpen() bool {
	if cb.threshold <= 0 || cb.failures.Load() < cb.threshold {
		cb.setState(0)
		return false
	}

	lastFailure := cb.lastFailure.Load().(time.Time)
	if lastFailure.IsZero() {
		cb.setState(0)
		return false
	}

	if cb.now().Sub(lastFailure) > cb.resetAfter {
		cb.reset()
		cb.setState(0)
		return false
	}

	cb.setState(1)
	return true
}

func (cb *CircuitBreaker) setState(state float64) {
	if cb.name != "" {
		metrics.CircuitBreakerState.WithLabelValues(cb.name).Set(state)
	}
}

func (cb *CircuitBreaker) recordFailure() {
	cb.failures.Add(1)
	cb.lastFailure.Store(cb.now())
	if cb.name != "" {
		metrics.CircuitBreakerFailures.WithLabelValues(cb.name).Inc()
	}
	if cb.log != nil {
		cb.log.Warnf("circuit breaker [%s]: failure recorded", cb.name)
	}
}

func (cb *CircuitBreaker) reset() {
	cb.failures.Store(0)
	cb.lastFailure.Store(time.Time{})
}

func (cb *CircuitBreaker) Call(ctx context.Context, fn func(context.Context) error) error {
	if cb.IsOpen() {
		if cb.log != nil {
			cb.log.Warnf("circuit breaker [%s]: circuit is open, rejecting request", cb.name)
		}
		return commonerrors.ErrCircuitOpen
	}

	callCtx := ctx
	if cb.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, cb.timeout)
		defer cancel()
	}

	err := fn(callCtx)
	if err != nil {
		if cb.isFailure(err) {
			cb.recordFailure()
		}
		return err
	}

	cb.reset()
	return nil
}
