package params

import (
	"github.com/shopspring/decimal"
)

// ComplianceContextParams is the snapshot of operator state the compliance
// checks run against. It is supplied by the caller; the engine stores none
// of it.
type ComplianceContextParams struct {
	AnnualTurnover  decimal.Decimal `json:"annual_turnover"`
	IsVatRegistered bool            `json:"is_vat_registered"`

	UsesMtdSoftware    bool `json:"uses_mtd_software"`
	DigitalRecordsKept bool `json:"digital_records_kept"`

	RecordRetentionYears int  `json:"record_retention_years"`
	ReceiptsArchived     bool `json:"receipts_archived"`

	OverdueDeadlines int `json:"overdue_deadlines"`

	MisappliedRateCount int `json:"misapplied_rate_count"`
	CheckedTransactions int `json:"checked_transactions"`

	CtReturnFiled bool `json:"ct_return_filed"`
	CtPaidOnTime  bool `json:"ct_paid_on_time"`
	CtReturnIsDue bool `json:"ct_return_is_due"`
}
