package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	validator "github.com/go-playground/validator/v10"

	"github.com/courierly/pricing-api/internal/common"
	"github.com/courierly/pricing-api/internal/pricing"
)

// Handler wires the quote service to HTTP.
type Handler struct {
	Svc      *Service
	Validate *validator.Validate
}

// NewValidator builds a validator that reports field names from json tags.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type quoteRequest struct {
	CartSubtotal *pricing.Money `json:"cartSubtotal" validate:"required"`
	DistanceKm   *float64       `json:"distanceKm" validate:"required"`
	RushHour     bool           `json:"rushHour"`
}

type quoteResponse struct {
	QuoteID      string `json:"quoteId"`
	Fee          int64  `json:"fee"`
	Formatted    string `json:"formatted"`
	Currency     string `json:"currency"`
	Tier         string `json:"tier"`
	RushHour     bool   `json:"rushHour"`
	FreeDelivery bool   `json:"freeDelivery"`
}

// Create prices a single order from the request payload.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "invalid request body", nil)
		return
	}
	if err := h.validate().Struct(req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION", "missing or invalid fields", fieldErrors(err))
		return
	}

	q, err := h.Svc.Price(r.Context(), *req.CartSubtotal, *req.DistanceKm, req.RushHour)
	if err != nil {
		common.WriteAppError(w, toAppError(err))
		return
	}

	common.JSON(w, http.StatusOK, map[string]any{
		"data": quoteResponse{
			QuoteID:      q.ID,
			Fee:          q.Fee,
			Formatted:    pricing.FormatMoney(q.Fee),
			Currency:     q.Currency,
			Tier:         string(q.Tier),
			RushHour:     q.RushHour,
			FreeDelivery: q.FreeDelivery,
		},
	})
}

type tariffTier struct {
	Tier   string  `json:"tier"`
	FromKm float64 `json:"fromKm"`
	ToKm   float64 `json:"toKm"`
	Fee    int64   `json:"fee"`
}

// Tariff publishes the static pricing rules applied by the engine.
func (h *Handler) Tariff(w http.ResponseWriter, r *http.Request) {
	rates := pricing.Tariff()
	tiers := make([]tariffTier, 0, len(rates))
	for _, rate := range rates {
		tiers = append(tiers, tariffTier{
			Tier:   string(rate.Tier),
			FromKm: rate.FromKm,
			ToKm:   rate.ToKm,
			Fee:    rate.Fee,
		})
	}
	currency := ""
	inclusive := false
	if h.Svc != nil {
		currency = h.Svc.Currency
		inclusive = h.Svc.Engine.InclusiveFreeDelivery
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"currency":              currency,
			"tiers":                 tiers,
			"maxDistanceKm":         pricing.MaxDistanceKm,
			"rushHourMultiplier":    1.5,
			"freeDeliveryThreshold": pricing.FreeDeliveryThreshold,
			"freeDeliveryInclusive": inclusive,
		},
	})
}

func (h *Handler) validate() *validator.Validate {
	if h.Validate != nil {
		return h.Validate
	}
	return NewValidator()
}

func toAppError(err error) *common.AppError {
	switch {
	case errors.Is(err, pricing.ErrOrderRequired):
		return common.NewAppError("MISSING_ORDER", err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, pricing.ErrNegativeSubtotal):
		return common.NewAppError("SUBTOTAL_OUT_OF_RANGE", err.Error(), http.StatusUnprocessableEntity, err)
	case errors.Is(err, pricing.ErrNegativeDistance):
		return common.NewAppError("DISTANCE_OUT_OF_RANGE", err.Error(), http.StatusUnprocessableEntity, err)
	case errors.Is(err, pricing.ErrDistanceTooFar):
		return common.NewAppError("DISTANCE_UNSUPPORTED", err.Error(), http.StatusUnprocessableEntity, err)
	default:
		return common.NewAppError("INTERNAL", "internal server error", http.StatusInternalServerError, err)
	}
}

func fieldErrors(err error) any {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return nil
	}
	out := make([]string, 0, len(verr))
	for _, fe := range verr {
		out = append(out, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
	}
	return out
}
