package pricing

// Tier identifies the distance band that priced an order.
type Tier string

// Distance tiers in ascending order.
const (
	TierShort  Tier = "short"
	TierMedium Tier = "medium"
	TierLong   Tier = "long"
)

// MaxDistanceKm is the longest delivery distance the tariff supports.
const MaxDistanceKm = 100.0

// FreeDeliveryThreshold is the cart subtotal above which delivery is free.
const FreeDeliveryThreshold Money = 50_00

const (
	shortUpToKm  = 5.0
	mediumUpToKm = 10.0

	shortFee  Money = 2_00
	mediumFee Money = 5_00
	longFee   Money = 10_00
)

// Engine computes delivery fees. The zero value applies the legacy rules.
type Engine struct {
	// InclusiveFreeDelivery switches the free-delivery comparison from the
	// legacy strict "subtotal > 50.00" to the documented "subtotal >= 50.00".
	// Under the strict default a cart of exactly 50.00 is charged the full
	// fee; the flag keeps the discrepancy discoverable instead of resolving
	// it silently either way.
	InclusiveFreeDelivery bool
}

// CalculateFee prices a single order. Validation runs before any pricing,
// first failure wins: missing order, negative distance, distance over the
// ceiling, negative subtotal. The rush-hour surcharge is applied to the base
// fee before the free-delivery override is considered, so the surcharged fee
// is fully computed even when the override discards it.
func (e Engine) CalculateFee(order *Order) (Money, error) {
	if order == nil {
		return 0, ErrOrderRequired
	}
	if order.DistanceKm < 0 {
		return 0, ErrNegativeDistance
	}
	if order.DistanceKm > MaxDistanceKm {
		return 0, ErrDistanceTooFar
	}
	// NewOrder already rejects this; kept so an order built by hand cannot
	// bypass the invariant.
	if order.CartSubtotal < 0 {
		return 0, ErrNegativeSubtotal
	}

	fee := BaseFee(order.DistanceKm)
	if order.IsRushHour {
		fee = fee * 3 / 2
	}
	if e.freeDelivery(order.CartSubtotal) {
		return 0, nil
	}
	return fee, nil
}

// BaseFee returns the distance-tier fee before surcharge and override.
// Boundaries belong to the upper tier: 5 km prices as medium, 10 km as long.
func BaseFee(distanceKm float64) Money {
	switch {
	case distanceKm < shortUpToKm:
		return shortFee
	case distanceKm < mediumUpToKm:
		return mediumFee
	default:
		return longFee
	}
}

// TierFor reports which distance band a distance falls into.
func TierFor(distanceKm float64) Tier {
	switch {
	case distanceKm < shortUpToKm:
		return TierShort
	case distanceKm < mediumUpToKm:
		return TierMedium
	default:
		return TierLong
	}
}

// TierRate describes one band of the distance tariff. ToKm is exclusive for
// the lower bands and inclusive for the last one.
type TierRate struct {
	Tier   Tier
	FromKm float64
	ToKm   float64
	Fee    Money
}

// Tariff returns the compiled-in distance tariff in ascending order.
func Tariff() []TierRate {
	return []TierRate{
		{Tier: TierShort, FromKm: 0, ToKm: shortUpToKm, Fee: shortFee},
		{Tier: TierMedium, FromKm: shortUpToKm, ToKm: mediumUpToKm, Fee: mediumFee},
		{Tier: TierLong, FromKm: mediumUpToKm, ToKm: MaxDistanceKm, Fee: longFee},
	}
}

func (e Engine) freeDelivery(subtotal Money) bool {
	if e.InclusiveFreeDelivery {
		return subtotal >= FreeDeliveryThreshold
	}
	return subtotal > FreeDeliveryThreshold
}
