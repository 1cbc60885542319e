package constants

import "github.com/shopspring/decimal"

// Rates and thresholds for the 2024/25 UK tax year. Keep these in one place
// so a rate change is a single edit plus a test sweep.

// VAT rates
var (
	VatStandardRate = decimal.RequireFromString("0.20")
	VatReducedRate  = decimal.RequireFromString("0.05")
	VatZeroRate     = decimal.Zero
)

// VatRegistrationThreshold is the rolling 12-month turnover above which
// VAT registration is mandatory.
var VatRegistrationThreshold = decimal.RequireFromString("90000")

// Corporation Tax
var (
	CtSmallProfitsThreshold = decimal.RequireFromString("50000")
	CtMainRateThreshold     = decimal.RequireFromString("250000")
	CtSmallProfitsRate      = decimal.RequireFromString("0.19")
	CtMainRate              = decimal.RequireFromString("0.25")
	CtMarginalReliefFactor  = decimal.RequireFromString("0.015")
)

// National Insurance (annualised class 1 thresholds)
var (
	NiPrimaryThreshold   = decimal.RequireFromString("12570")
	NiUpperEarningsLimit = decimal.RequireFromString("50270")
	NiSecondaryThreshold = decimal.RequireFromString("9100")

	NiEmployeeMainRate  = decimal.RequireFromString("0.12")
	NiEmployeeUpperRate = decimal.RequireFromString("0.02")
	NiEmployerRate      = decimal.RequireFromString("0.138")
)

// ReminderDayOffsets are the days-until-due values at which a deadline
// reminder fires. Matching is exact, and each deadline reminds at most once.
var ReminderDayOffsets = []int{30, 14, 7, 3, 1}

// DueSoonWindowDays is the number of days before the due date at which a
// deadline moves from upcoming to due soon.
const DueSoonWindowDays = 7

// PayrollSubmissionDay is the day of the following month on which a monthly
// payroll (RTI) submission falls due.
const PayrollSubmissionDay = 19

// ComplianceScoreThreshold is the minimum overall score considered compliant.
const ComplianceScoreThreshold = 80
