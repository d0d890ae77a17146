package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/clock"
	commonerrors "github.com/AlibekovAA/exercise-tracker/backend/internal/common/errors"
)

var errStoreDown = errors.New("store down")

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Threshold:  2,
		ResetAfter: time.Minute,
		Now:        clk.Now,
	})

	failing := func(context.Context) error { return errStoreDown }

	for i := 0; i < 2; i++ {
		if err := cb.Call(context.Background(), failing); !errors.Is(err, errStoreDown) {
			t.Fatalf("call %d: expected store error, got %v", i, err)
		}
	}

	called := false
	err := cb.Call(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, commonerrors.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Error("expected fn not to be called while open")
	}

	clk.Advance(2 * time.Minute)

	if err := cb.Call(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("expected breaker to close after reset window, got %v", err)
	}
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	notFound := errors.New("not found")
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Threshold:  1,
		ResetAfter: time.Minute,
		IsFailure:  func(err error) bool { return !errors.Is(err, notFound) },
	})

	for i := 0; i < 3; i++ {
		if err := cb.Call(context.Background(), func(context.Context) error { return notFound }); !errors.Is(err, notFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	}

	if cb.IsOpen() {
		t.Error("expected breaker to stay closed for ignored errors")
	}
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{Threshold: 2, ResetAfter: time.Minute})

	_ = cb.Call(context.Background(), func(context.Context) error { return errStoreDown })
	_ = cb.Call(context.Background(), func(context.Context) error { return nil })
	_ = cb.Call(context.Background(), func(context.Context) error { return errStoreDown })

	if cb.IsOpen() {
		t.Error("expected breaker closed: failures were not consecutive")
	}
}

func TestCircuitBreaker_AppliesTimeout(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{Threshold: 5, Timeout: 10 * time.Millisecond})

	err := cb.Call(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
