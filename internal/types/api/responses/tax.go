package responses

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kerbside/kerbside-api/internal/types/business"
)

// CorporationTaxResult contains the outcome of a Corporation Tax calculation
type CorporationTaxResult struct {
	TaxableProfit    decimal.Decimal `json:"taxable_profit"`
	Tax              decimal.Decimal `json:"tax"`
	TaxFreeAllowance decimal.Decimal `json:"tax_free_allowance"`
	EffectiveRate    decimal.Decimal `json:"effective_rate"`
	MarginalRelief   decimal.Decimal `json:"marginal_relief"`
	PeriodMonths     int             `json:"period_months"`
	Warnings         []string        `json:"warnings,omitempty"`
}

// NationalInsuranceResult contains both contribution legs of an NI
// calculation plus the rates that produced them
type NationalInsuranceResult struct {
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Total                decimal.Decimal `json:"total"`
	EmployeeRate         decimal.Decimal `json:"employee_rate"`
	EmployerRate         decimal.Decimal `json:"employer_rate"`
}

// VatReturnSummary is the bucketed result of a VAT return build
type VatReturnSummary struct {
	PeriodKey      string                      `json:"period_key"`
	Breakdown      []business.VatRateBreakdown `json:"breakdown"`
	VatOnSales     decimal.Decimal             `json:"vat_on_sales"`
	VatOnPurchases decimal.Decimal             `json:"vat_on_purchases"`
	NetVatDue      decimal.Decimal             `json:"net_vat_due"`
	GeneratedAt    time.Time                   `json:"generated_at"`
}
