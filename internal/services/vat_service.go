package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/helpers"
	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/api/responses"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// VatService performs VAT calculations and builds VAT returns. It is
// stateless and safe for concurrent use.
type VatService struct {
	logger *zap.Logger
}

// NewVatService creates a new VAT service
func NewVatService() *VatService {
	return &VatService{
		logger: logger.Log,
	}
}

var one = decimal.NewFromInt(1)

// Calculate computes net, VAT and gross for a single amount under the
// given rate classification. The three outputs are rounded independently
// from full-precision intermediates; none is recomputed from the already
// rounded others.
func (s *VatService) Calculate(p params.VatCalculationParams) (*business.VatCalculation, error) {
	if !p.RateClass.Valid() {
		return nil, fmt.Errorf("rate class %q: %w", p.RateClass, business.ErrInvalidRate)
	}

	// Exempt supplies carry no VAT in either direction and are never
	// reclaimable downstream.
	if p.RateClass == business.RateClassExempt {
		amount := helpers.RoundMoney(p.Amount)
		return &business.VatCalculation{
			Net:       amount,
			Vat:       decimal.Zero,
			Gross:     amount,
			RateClass: business.RateClassExempt,
		}, nil
	}

	rate, _ := p.RateClass.Rate()

	// Under reverse charge the supplier records zero VAT; the liability
	// shifts to the counterparty. Distinct from exempt for reporting, so
	// the classified rate is still carried on the result.
	if p.ReverseCharge {
		amount := helpers.RoundMoney(p.Amount)
		return &business.VatCalculation{
			Net:           amount,
			Vat:           decimal.Zero,
			Gross:         amount,
			AppliedRate:   rate,
			RateClass:     p.RateClass,
			ReverseCharge: true,
		}, nil
	}

	var net, vat, gross decimal.Decimal
	if p.AmountIsGross {
		net = p.Amount.Div(one.Add(rate))
		vat = p.Amount.Sub(net)
		gross = p.Amount
	} else {
		net = p.Amount
		vat = p.Amount.Mul(rate)
		gross = p.Amount.Add(vat)
	}

	result := &business.VatCalculation{
		Net:         helpers.RoundMoney(net),
		Vat:         helpers.RoundMoney(vat),
		Gross:       helpers.RoundMoney(gross),
		AppliedRate: rate,
		RateClass:   p.RateClass,
	}

	s.logger.Debug("calculated VAT",
		zap.String("rate_class", string(p.RateClass)),
		zap.String("net", result.Net.String()),
		zap.String("vat", result.Vat.String()),
		zap.String("gross", result.Gross.String()))

	return result, nil
}

// BuildReturn runs every line through the calculator and buckets the
// totals per rate class. VAT on purchases is only reclaimed when a line is
// explicitly marked reclaimable and business related; exempt and
// reverse-charge lines never contribute reclaim.
func (s *VatService) BuildReturn(p params.VatReturnParams) (*responses.VatReturnSummary, error) {
	order := []business.RateClass{
		business.RateClassStandard,
		business.RateClassReduced,
		business.RateClassZero,
		business.RateClassExempt,
	}

	buckets := make(map[business.RateClass]*business.VatRateBreakdown, len(order))
	for _, rc := range order {
		buckets[rc] = &business.VatRateBreakdown{RateClass: rc}
	}

	vatOnSales := decimal.Zero
	vatOnPurchases := decimal.Zero

	for i, line := range p.Lines {
		calc, err := s.Calculate(params.VatCalculationParams{
			Amount:        line.Amount,
			RateClass:     line.RateClass,
			ReverseCharge: line.ReverseCharge,
			AmountIsGross: line.AmountIsGross,
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}

		bucket := buckets[line.RateClass]
		if line.IsSale {
			bucket.SalesNet = bucket.SalesNet.Add(calc.Net)
			bucket.SalesVat = bucket.SalesVat.Add(calc.Vat)
			bucket.SalesCount++
			vatOnSales = vatOnSales.Add(calc.Vat)
			continue
		}

		bucket.PurchasesNet = bucket.PurchasesNet.Add(calc.Net)
		bucket.PurchasesCount++
		if line.Reclaimable && line.BusinessRelated && !calc.ReverseCharge {
			bucket.ReclaimableVat = bucket.ReclaimableVat.Add(calc.Vat)
			vatOnPurchases = vatOnPurchases.Add(calc.Vat)
		}
	}

	breakdown := make([]business.VatRateBreakdown, 0, len(order))
	for _, rc := range order {
		breakdown = append(breakdown, *buckets[rc])
	}

	summary := &responses.VatReturnSummary{
		PeriodKey:      p.PeriodKey,
		Breakdown:      breakdown,
		VatOnSales:     vatOnSales,
		VatOnPurchases: vatOnPurchases,
		NetVatDue:      vatOnSales.Sub(vatOnPurchases),
		GeneratedAt:    time.Now().UTC(),
	}

	s.logger.Info("built VAT return",
		zap.String("period_key", p.PeriodKey),
		zap.Int("lines", len(p.Lines)),
		zap.String("net_vat_due", summary.NetVatDue.String()))

	return summary, nil
}
