package business

// ComplianceCheckType identifies one compliance rule
type ComplianceCheckType string

const (
	CheckTypeVatRegistration  ComplianceCheckType = "vat_registration"
	CheckTypeMakingTaxDigital ComplianceCheckType = "making_tax_digital"
	CheckTypeRecordKeeping    ComplianceCheckType = "record_keeping"
	CheckTypePaymentDeadlines ComplianceCheckType = "payment_deadlines"
	CheckTypeRateApplication  ComplianceCheckType = "rate_application"
	CheckTypeCorporationTax   ComplianceCheckType = "corporation_tax"
)

// ComplianceCheck is the outcome of a single compliance rule. Scores run
// 0-100; issues describe what is wrong, recommendations what to do about it.
type ComplianceCheck struct {
	CheckType       ComplianceCheckType `json:"check_type"`
	IsCompliant     bool                `json:"is_compliant"`
	Score           int                 `json:"score"`
	Issues          []string            `json:"issues"`
	Recommendations []string            `json:"recommendations"`
}
