package quote

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/courierly/pricing-api/internal/obs"
	"github.com/courierly/pricing-api/internal/pricing"
)

// Service prices delivery quotes and records domain telemetry.
type Service struct {
	Engine   pricing.Engine
	Currency string
	Log      zerolog.Logger
}

// Quote is the priced result handed back to callers.
type Quote struct {
	ID           string
	Fee          pricing.Money
	Currency     string
	Tier         pricing.Tier
	RushHour     bool
	FreeDelivery bool
}

// Price validates the inputs and computes a quote. Validation failures come
// back as the pricing sentinel errors so callers can report the specific
// condition.
func (s *Service) Price(ctx context.Context, cartSubtotal pricing.Money, distanceKm float64, rushHour bool) (Quote, error) {
	order, err := pricing.NewOrder(cartSubtotal, distanceKm, rushHour)
	if err != nil {
		s.reject(err)
		return Quote{}, err
	}
	fee, err := s.Engine.CalculateFee(order)
	if err != nil {
		s.reject(err)
		return Quote{}, err
	}

	q := Quote{
		ID:           uuid.NewString(),
		Fee:          fee,
		Currency:     s.Currency,
		Tier:         pricing.TierFor(order.DistanceKm),
		RushHour:     order.IsRushHour,
		FreeDelivery: fee == 0,
	}

	if obs.QuotesTotal != nil {
		obs.QuotesTotal.WithLabelValues(string(q.Tier), boolLabel(q.RushHour)).Inc()
	}
	if q.FreeDelivery && obs.FreeDeliveriesTotal != nil {
		obs.FreeDeliveriesTotal.Inc()
	}
	if obs.QuoteFeeCents != nil {
		obs.QuoteFeeCents.Observe(float64(fee))
	}

	s.Log.Debug().
		Str("quote_id", q.ID).
		Str("tier", string(q.Tier)).
		Bool("rush_hour", q.RushHour).
		Bool("free_delivery", q.FreeDelivery).
		Str("fee", pricing.FormatMoney(q.Fee)).
		Msg("quote_priced")

	return q, nil
}

func (s *Service) reject(err error) {
	if obs.QuotesRejectedTotal != nil {
		obs.QuotesRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, pricing.ErrOrderRequired):
		return "missing_order"
	case errors.Is(err, pricing.ErrNegativeSubtotal):
		return "negative_subtotal"
	case errors.Is(err, pricing.ErrNegativeDistance):
		return "negative_distance"
	case errors.Is(err, pricing.ErrDistanceTooFar):
		return "distance_too_far"
	default:
		return "internal"
	}
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
