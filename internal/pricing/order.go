package pricing

import "errors"

var (
	// ErrOrderRequired is returned when the order reference is absent.
	ErrOrderRequired = errors.New("order is required")
	// ErrNegativeSubtotal is returned when the cart subtotal is below zero.
	ErrNegativeSubtotal = errors.New("cart subtotal cannot be negative")
	// ErrNegativeDistance is returned when the delivery distance is below zero.
	ErrNegativeDistance = errors.New("distance cannot be negative")
	// ErrDistanceTooFar is returned when the distance exceeds the supported ceiling.
	ErrDistanceTooFar = errors.New("distance exceeds the maximum supported distance of 100 km")
)

// Order is the input to a single delivery fee calculation.
type Order struct {
	CartSubtotal Money
	DistanceKm   float64
	IsRushHour   bool
}

// NewOrder builds an order, rejecting a negative cart subtotal up front.
// The distance is intentionally left unchecked here; an out-of-domain value
// surfaces on the first calculation attempt instead of at assignment.
func NewOrder(cartSubtotal Money, distanceKm float64, rushHour bool) (*Order, error) {
	if cartSubtotal < 0 {
		return nil, ErrNegativeSubtotal
	}
	return &Order{
		CartSubtotal: cartSubtotal,
		DistanceKm:   distanceKm,
		IsRushHour:   rushHour,
	}, nil
}
