package resilience_test

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"

	"github.com/boddenberg/zapay-go/internal/infra/resilience"
)

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")

	for i := 0; i < 20; i++ {
		_, err := cb.Execute(func() (interface{}, error) {
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected closed state, got %v", cb.State())
	}
}

func TestCircuitBreaker_OpensAfterFailureRatio(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")
	boom := errors.New("connection refused")

	// Below the 5 request minimum the breaker must not trip.
	for i := 0; i < 4; i++ {
		cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("tripped before the request floor, state %v", cb.State())
	}

	cb.Execute(func() (interface{}, error) { return nil, boom })
	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("expected open state after 5 failures, got %v", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) { return "ok", nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState while open, got %v", err)
	}
}

func TestCircuitBreaker_SuccessesKeepRatioBelowTrip(t *testing.T) {
	cb := resilience.NewCircuitBreaker("test")
	boom := errors.New("connection refused")

	// 4 failures out of 10 is under the 0.6 trip ratio.
	for i := 0; i < 6; i++ {
		cb.Execute(func() (interface{}, error) { return "ok", nil })
	}
	for i := 0; i < 4; i++ {
		cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected closed state at 40%% failures, got %v", cb.State())
	}
}
