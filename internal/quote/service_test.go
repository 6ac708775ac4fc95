package quote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/courierly/pricing-api/internal/obs"
	"github.com/courierly/pricing-api/internal/pricing"
	"github.com/courierly/pricing-api/internal/quote"
)

func TestPriceRecordsDomainMetrics(t *testing.T) {
	obs.MustRegisterDomainMetrics("pricing_test", prometheus.NewRegistry())

	svc := &quote.Service{Engine: pricing.Engine{}, Currency: "EUR", Log: zerolog.Nop()}
	ctx := context.Background()

	q, err := svc.Price(ctx, 30_00, 6.0, false)
	require.NoError(t, err)
	require.Equal(t, int64(500), q.Fee)
	require.Equal(t, pricing.TierMedium, q.Tier)
	require.False(t, q.FreeDelivery)
	require.NotEmpty(t, q.ID)

	quoted := testutil.ToFloat64(obs.QuotesTotal.WithLabelValues("medium", "false"))
	require.GreaterOrEqual(t, quoted, float64(1))

	free := testutil.ToFloat64(obs.FreeDeliveriesTotal)
	q, err = svc.Price(ctx, 100_00, 6.0, true)
	require.NoError(t, err)
	require.True(t, q.FreeDelivery)
	require.Equal(t, free+1, testutil.ToFloat64(obs.FreeDeliveriesTotal))

	rejected := testutil.ToFloat64(obs.QuotesRejectedTotal.WithLabelValues("negative_distance"))
	_, err = svc.Price(ctx, 30_00, -1.0, false)
	require.True(t, errors.Is(err, pricing.ErrNegativeDistance))
	require.Equal(t, rejected+1, testutil.ToFloat64(obs.QuotesRejectedTotal.WithLabelValues("negative_distance")))
}

func TestPriceRejectsNegativeSubtotal(t *testing.T) {
	svc := &quote.Service{Engine: pricing.Engine{}, Currency: "EUR", Log: zerolog.Nop()}
	_, err := svc.Price(context.Background(), -1, 3.0, false)
	require.True(t, errors.Is(err, pricing.ErrNegativeSubtotal))
}

func TestPriceInclusiveFreeDelivery(t *testing.T) {
	svc := &quote.Service{Engine: pricing.Engine{InclusiveFreeDelivery: true}, Currency: "EUR", Log: zerolog.Nop()}
	q, err := svc.Price(context.Background(), 50_00, 6.0, false)
	require.NoError(t, err)
	require.True(t, q.FreeDelivery)
	require.Equal(t, int64(0), q.Fee)
}
