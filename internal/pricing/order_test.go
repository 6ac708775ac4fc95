package pricing

import (
	"errors"
	"testing"
)

func TestNewOrderRejectsNegativeSubtotal(t *testing.T) {
	if _, err := NewOrder(-1, 3.0, false); !errors.Is(err, ErrNegativeSubtotal) {
		t.Fatalf("expected ErrNegativeSubtotal, got %v", err)
	}
}

func TestNewOrderDefersDistanceValidation(t *testing.T) {
	// An invalid distance is accepted at construction and only rejected on
	// the first calculation attempt.
	order, err := NewOrder(25_00, 250.0, false)
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if _, err := (Engine{}).CalculateFee(order); !errors.Is(err, ErrDistanceTooFar) {
		t.Fatalf("expected ErrDistanceTooFar, got %v", err)
	}
}
