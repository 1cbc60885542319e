package params

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerbside/kerbside-api/internal/types/business"
)

// VatCalculationParams contains parameters for a single VAT calculation
type VatCalculationParams struct {
	Amount        decimal.Decimal    `json:"amount" binding:"required"`
	RateClass     business.RateClass `json:"rate_class" binding:"required"`
	ReverseCharge bool               `json:"reverse_charge"`
	AmountIsGross bool               `json:"amount_is_gross"`
}

// VatReturnParams contains the lines and period of a VAT return
type VatReturnParams struct {
	PeriodKey string                   `json:"period_key"`
	Lines     []business.VatReturnLine `json:"lines" binding:"required"`
}

// CorporationTaxParams contains parameters for a Corporation Tax calculation
type CorporationTaxParams struct {
	Profit              decimal.Decimal `json:"profit"`
	PeriodStart         time.Time       `json:"period_start" binding:"required"`
	PeriodEnd           time.Time       `json:"period_end" binding:"required"`
	AssociatedCompanies int             `json:"associated_companies"`
}

// NationalInsuranceParams contains parameters for an NI calculation
type NationalInsuranceParams struct {
	GrossAnnualSalary decimal.Decimal `json:"gross_annual_salary"`
	IsEmployeeLeg     bool            `json:"is_employee_leg"`
}
