package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/constants"
	"github.com/kerbside/kerbside-api/internal/helpers"
	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/api/responses"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// CorporationTaxService computes Corporation Tax with marginal relief.
// Stateless; safe for concurrent use.
type CorporationTaxService struct {
	logger *zap.Logger
}

// NewCorporationTaxService creates a new Corporation Tax service
func NewCorporationTaxService() *CorporationTaxService {
	return &CorporationTaxService{
		logger: logger.Log,
	}
}

var twelve = decimal.NewFromInt(12)

// Calculate applies the tiered Corporation Tax rules. Both the accounting
// period length and the associated-company count scale the profit
// thresholds down proportionally.
//
// The taper band upper boundary is 2x the scaled upper threshold.
// Downstream reconciliation relies on that exact boundary.
func (s *CorporationTaxService) Calculate(p params.CorporationTaxParams) (*responses.CorporationTaxResult, error) {
	if !p.PeriodEnd.After(p.PeriodStart) {
		return nil, fmt.Errorf("period end %s is not after start %s: %w",
			p.PeriodEnd.Format("2006-01-02"), p.PeriodStart.Format("2006-01-02"), business.ErrInvalidPeriod)
	}

	months := inclusiveMonths(p.PeriodStart, p.PeriodEnd)

	var warnings []string
	if months > 12 {
		warnings = append(warnings, fmt.Sprintf("accounting period spans %d months; thresholds scaled beyond a full year", months))
	}

	scale := decimal.NewFromInt(int64(months)).
		Div(twelve).
		Div(decimal.NewFromInt(int64(p.AssociatedCompanies + 1)))

	lower := constants.CtSmallProfitsThreshold.Mul(scale)
	upper := constants.CtMainRateThreshold.Mul(scale)
	taperCeiling := upper.Mul(decimal.NewFromInt(2))

	profit := helpers.RoundMoney(p.Profit)

	result := &responses.CorporationTaxResult{
		TaxableProfit:    profit,
		TaxFreeAllowance: helpers.RoundMoney(lower),
		PeriodMonths:     months,
		Warnings:         warnings,
		Tax:              decimal.Zero,
		EffectiveRate:    decimal.Zero,
		MarginalRelief:   decimal.Zero,
	}

	switch {
	case profit.LessThanOrEqual(lower):
		// Below the small-profits threshold nothing is due. Negative
		// profit lands here too; a loss is not an error.

	case profit.LessThanOrEqual(upper):
		// Tax keeps full decimal precision: a penny of profit over the
		// threshold must yield a nonzero liability, which 2 dp rounding
		// would swallow. Presentation rounds.
		result.Tax = profit.Sub(lower).Mul(constants.CtSmallProfitsRate)
		result.EffectiveRate = constants.CtSmallProfitsRate

	case profit.LessThanOrEqual(taperCeiling):
		relief := taperCeiling.Sub(profit).Mul(constants.CtMarginalReliefFactor)
		tax := profit.Mul(constants.CtMainRate).Sub(relief)
		result.MarginalRelief = helpers.RoundMoney(relief)
		result.Tax = tax
		result.EffectiveRate = tax.Div(profit).Round(4)

	default:
		result.Tax = profit.Mul(constants.CtMainRate)
		result.EffectiveRate = constants.CtMainRate
	}

	s.logger.Info("calculated corporation tax",
		zap.String("profit", profit.String()),
		zap.String("tax", result.Tax.String()),
		zap.String("effective_rate", result.EffectiveRate.String()),
		zap.Int("period_months", months),
		zap.Int("associated_companies", p.AssociatedCompanies))

	return result, nil
}

// inclusiveMonths counts calendar months touched by the period, inclusive
// of both ends: 1 Jan - 31 Dec of one year is 12.
func inclusiveMonths(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}
