package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbside/kerbside-api/internal/services"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

func fullYear2024() (time.Time, time.Time) {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
}

func TestCorporationTaxService_Calculate(t *testing.T) {
	service := services.NewCorporationTaxService()
	start, end := fullYear2024()

	tests := []struct {
		name           string
		profit         string
		associated     int
		expectedTax    string
		expectedRate   string
		expectedRelief string
	}{
		{
			name:           "zero profit",
			profit:         "0",
			expectedTax:    "0.00",
			expectedRate:   "0",
			expectedRelief: "0.00",
		},
		{
			name:           "loss yields zero tax not an error",
			profit:         "-25000",
			expectedTax:    "0.00",
			expectedRate:   "0",
			expectedRelief: "0.00",
		},
		{
			name:           "exactly at the small profits threshold",
			profit:         "50000",
			expectedTax:    "0.00",
			expectedRate:   "0",
			expectedRelief: "0.00",
		},
		{
			name:           "a penny over the threshold is taxed",
			profit:         "50000.01",
			expectedTax:    "0.00",
			expectedRate:   "0.19",
			expectedRelief: "0.00",
		},
		{
			name:           "small profits band",
			profit:         "100000",
			expectedTax:    "9500.00",
			expectedRate:   "0.19",
			expectedRelief: "0.00",
		},
		{
			name:           "top of the small profits band",
			profit:         "250000",
			expectedTax:    "38000.00",
			expectedRate:   "0.19",
			expectedRelief: "0.00",
		},
		{
			// relief = (500000 - 300000) * 0.015 = 3000
			// tax = 300000 * 0.25 - 3000 = 72000
			name:           "taper band applies marginal relief",
			profit:         "300000",
			expectedTax:    "72000.00",
			expectedRate:   "0.24",
			expectedRelief: "3000.00",
		},
		{
			name:           "above the taper ceiling pays the full main rate",
			profit:         "600000",
			expectedTax:    "150000.00",
			expectedRate:   "0.25",
			expectedRelief: "0.00",
		},
		{
			// One associated company halves both thresholds: lower 25k,
			// upper 125k, taper ceiling 250k.
			name:           "associated company scales the thresholds",
			profit:         "100000",
			associated:     1,
			expectedTax:    "14250.00",
			expectedRate:   "0.19",
			expectedRelief: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Calculate(params.CorporationTaxParams{
				Profit:              decimal.RequireFromString(tt.profit),
				PeriodStart:         start,
				PeriodEnd:           end,
				AssociatedCompanies: tt.associated,
			})
			require.NoError(t, err)

			assert.Equal(t, 12, result.PeriodMonths)
			assert.Equal(t, tt.expectedTax, result.Tax.StringFixed(2))
			assert.Equal(t, tt.expectedRate, result.EffectiveRate.String())
			assert.Equal(t, tt.expectedRelief, result.MarginalRelief.StringFixed(2))
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestCorporationTaxService_Calculate_PennyOverThreshold(t *testing.T) {
	service := services.NewCorporationTaxService()
	start, end := fullYear2024()

	result, err := service.Calculate(params.CorporationTaxParams{
		Profit:      dec("50000.01"),
		PeriodStart: start,
		PeriodEnd:   end,
	})
	require.NoError(t, err)
	assert.True(t, result.Tax.GreaterThan(decimal.Zero),
		"a penny over the threshold must produce tax, got %s", result.Tax)
}

func TestCorporationTaxService_Calculate_TaperEffectiveRate(t *testing.T) {
	service := services.NewCorporationTaxService()
	start, end := fullYear2024()

	result, err := service.Calculate(params.CorporationTaxParams{
		Profit:      dec("300000"),
		PeriodStart: start,
		PeriodEnd:   end,
	})
	require.NoError(t, err)

	assert.True(t, result.EffectiveRate.GreaterThan(dec("0.19")))
	assert.True(t, result.EffectiveRate.LessThan(dec("0.25")))
	assert.True(t, result.MarginalRelief.GreaterThan(decimal.Zero))
}

func TestCorporationTaxService_Calculate_Monotonic(t *testing.T) {
	service := services.NewCorporationTaxService()
	start, end := fullYear2024()

	previous := decimal.Zero
	for profit := int64(0); profit <= 600000; profit += 5000 {
		result, err := service.Calculate(params.CorporationTaxParams{
			Profit:      decimal.NewFromInt(profit),
			PeriodStart: start,
			PeriodEnd:   end,
		})
		require.NoError(t, err)

		assert.True(t, result.Tax.GreaterThanOrEqual(previous),
			"tax decreased at profit %d: %s < %s", profit, result.Tax, previous)
		previous = result.Tax
	}
}

func TestCorporationTaxService_Calculate_ShortPeriod(t *testing.T) {
	service := services.NewCorporationTaxService()

	// A six month period halves the thresholds: lower 25k, upper 125k.
	result, err := service.Calculate(params.CorporationTaxParams{
		Profit:      dec("30000"),
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 6, result.PeriodMonths)
	assert.Equal(t, "25000.00", result.TaxFreeAllowance.StringFixed(2))
	assert.Equal(t, "950.00", result.Tax.StringFixed(2))
	assert.Equal(t, "0.19", result.EffectiveRate.String())
}

func TestCorporationTaxService_Calculate_LongPeriodWarns(t *testing.T) {
	service := services.NewCorporationTaxService()

	result, err := service.Calculate(params.CorporationTaxParams{
		Profit:      dec("100000"),
		PeriodStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 18, result.PeriodMonths)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "18 months")
}

func TestCorporationTaxService_Calculate_InvalidPeriod(t *testing.T) {
	service := services.NewCorporationTaxService()

	_, err := service.Calculate(params.CorporationTaxParams{
		Profit:      dec("100000"),
		PeriodStart: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, business.ErrInvalidPeriod)
}
