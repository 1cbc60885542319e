package business

import (
	"github.com/shopspring/decimal"

	"github.com/kerbside/kerbside-api/internal/constants"
)

// RateClass is the VAT treatment of a transaction
type RateClass string

const (
	RateClassStandard RateClass = "standard"
	RateClassReduced  RateClass = "reduced"
	RateClassZero     RateClass = "zero"
	RateClassExempt   RateClass = "exempt"
)

// Rate returns the percentage for the rate class. Exempt supplies carry no
// rate at all, so the second return is false rather than a zero rate: zero
// rated and exempt are different things for reclaim purposes.
func (rc RateClass) Rate() (decimal.Decimal, bool) {
	switch rc {
	case RateClassStandard:
		return constants.VatStandardRate, true
	case RateClassReduced:
		return constants.VatReducedRate, true
	case RateClassZero:
		return constants.VatZeroRate, true
	default:
		return decimal.Decimal{}, false
	}
}

// Valid reports whether rc is a known rate classification
func (rc RateClass) Valid() bool {
	switch rc {
	case RateClassStandard, RateClassReduced, RateClassZero, RateClassExempt:
		return true
	}
	return false
}

// VatCalculation is the result of a single VAT computation. All three
// amounts are rounded independently to 2 dp; gross may differ from
// net + vat by at most one penny, which reconciliation tolerates.
type VatCalculation struct {
	Net           decimal.Decimal `json:"net"`
	Vat           decimal.Decimal `json:"vat"`
	Gross         decimal.Decimal `json:"gross"`
	AppliedRate   decimal.Decimal `json:"applied_rate"`
	RateClass     RateClass       `json:"rate_class"`
	ReverseCharge bool            `json:"reverse_charge"`
}

// VatReturnLine is one sale or purchase entering a VAT return
type VatReturnLine struct {
	Description     string          `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	AmountIsGross   bool            `json:"amount_is_gross"`
	RateClass       RateClass       `json:"rate_class"`
	ReverseCharge   bool            `json:"reverse_charge"`
	IsSale          bool            `json:"is_sale"`
	Reclaimable     bool            `json:"reclaimable"`
	BusinessRelated bool            `json:"business_related"`
}

// VatRateBreakdown holds the per-rate-class totals of a VAT return
type VatRateBreakdown struct {
	RateClass      RateClass       `json:"rate_class"`
	SalesNet       decimal.Decimal `json:"sales_net"`
	SalesVat       decimal.Decimal `json:"sales_vat"`
	PurchasesNet   decimal.Decimal `json:"purchases_net"`
	ReclaimableVat decimal.Decimal `json:"reclaimable_vat"`
	SalesCount     int             `json:"sales_count"`
	PurchasesCount int             `json:"purchases_count"`
}
