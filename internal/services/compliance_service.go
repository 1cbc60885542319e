package services

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/constants"
	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/api/responses"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// ComplianceService runs the independent compliance checks and folds them
// into a single report. Checks are pure over the supplied context snapshot
// and recomputed on every run.
type ComplianceService struct {
	logger *zap.Logger
}

// NewComplianceService creates a new compliance service
func NewComplianceService() *ComplianceService {
	return &ComplianceService{
		logger: logger.Log,
	}
}

// RunChecks executes every compliance check and aggregates the outcome.
// The overall score is the rounded mean of the constituent scores; issues
// and recommendations are flattened across checks without deduplication.
func (s *ComplianceService) RunChecks(p params.ComplianceContextParams) *responses.ComplianceReport {
	checks := []business.ComplianceCheck{
		s.checkVatRegistration(p),
		s.checkMakingTaxDigital(p),
		s.checkRecordKeeping(p),
		s.checkPaymentDeadlines(p),
		s.checkRateApplication(p),
		s.checkCorporationTax(p),
	}

	total := 0
	var issues, recommendations []string
	for _, check := range checks {
		total += check.Score
		issues = append(issues, check.Issues...)
		recommendations = append(recommendations, check.Recommendations...)
	}

	overall := int(math.Round(float64(total) / float64(len(checks))))

	report := &responses.ComplianceReport{
		OverallScore:    overall,
		IsCompliant:     overall >= constants.ComplianceScoreThreshold,
		Checks:          checks,
		Issues:          issues,
		Recommendations: recommendations,
		GeneratedAt:     time.Now().UTC(),
	}

	s.logger.Info("ran compliance checks",
		zap.Int("overall_score", overall),
		zap.Bool("is_compliant", report.IsCompliant),
		zap.Int("issues", len(issues)))

	return report
}

// checkVatRegistration flags an operator trading over the registration
// threshold without being VAT registered. The penalty is a fixed score of
// 60 regardless of how far over the threshold turnover is.
func (s *ComplianceService) checkVatRegistration(p params.ComplianceContextParams) business.ComplianceCheck {
	check := business.ComplianceCheck{
		CheckType:   business.CheckTypeVatRegistration,
		IsCompliant: true,
		Score:       100,
	}

	if p.AnnualTurnover.GreaterThanOrEqual(constants.VatRegistrationThreshold) && !p.IsVatRegistered {
		check.IsCompliant = false
		check.Score = 60
		check.Issues = append(check.Issues,
			fmt.Sprintf("annual turnover %s exceeds the VAT registration threshold %s but the business is not VAT registered",
				p.AnnualTurnover.StringFixed(2), constants.VatRegistrationThreshold.StringFixed(2)))
		check.Recommendations = append(check.Recommendations,
			"register for VAT with HMRC without delay; late registration can incur penalties")
	}

	return check
}

// checkMakingTaxDigital verifies MTD-compatible software and digital
// record keeping are in place
func (s *ComplianceService) checkMakingTaxDigital(p params.ComplianceContextParams) business.ComplianceCheck {
	check := business.ComplianceCheck{
		CheckType:   business.CheckTypeMakingTaxDigital,
		IsCompliant: true,
		Score:       100,
	}

	if !p.UsesMtdSoftware {
		check.IsCompliant = false
		check.Score -= 40
		check.Issues = append(check.Issues, "VAT returns are not submitted through MTD-compatible software")
		check.Recommendations = append(check.Recommendations, "adopt MTD-compatible bookkeeping software for VAT submissions")
	}
	if !p.DigitalRecordsKept {
		check.IsCompliant = false
		check.Score -= 20
		check.Issues = append(check.Issues, "digital VAT records are not being kept")
		check.Recommendations = append(check.Recommendations, "keep digital records of sales and purchases as MTD requires")
	}

	return check
}

// checkRecordKeeping verifies statutory record retention
func (s *ComplianceService) checkRecordKeeping(p params.ComplianceContextParams) business.ComplianceCheck {
	check := business.ComplianceCheck{
		CheckType:   business.CheckTypeRecordKeeping,
		IsCompliant: true,
		Score:       100,
	}

	if !p.DigitalRecordsKept {
		check.IsCompliant = false
		check.Score -= 20
		check.Issues = append(check.Issues, "business records are not kept digitally")
		check.Recommendations = append(check.Recommendations, "digitise record keeping to simplify retention and audit")
	}
	if p.RecordRetentionYears < 6 {
		check.IsCompliant = false
		check.Score -= 20
		check.Issues = append(check.Issues,
			fmt.Sprintf("records retained for %d years; company records must be kept for 6", p.RecordRetentionYears))
		check.Recommendations = append(check.Recommendations, "extend record retention to at least 6 years")
	}
	if !p.ReceiptsArchived {
		check.IsCompliant = false
		check.Score -= 20
		check.Issues = append(check.Issues, "expense receipts are not archived")
		check.Recommendations = append(check.Recommendations, "archive receipts alongside the transactions they evidence")
	}

	return check
}

// checkPaymentDeadlines scores 100 less 20 per overdue deadline, floored
// at zero
func (s *ComplianceService) checkPaymentDeadlines(p params.ComplianceContextParams) business.ComplianceCheck {
	score := 100 - p.OverdueDeadlines*20
	if score < 0 {
		score = 0
	}

	check := business.ComplianceCheck{
		CheckType:   business.CheckTypePaymentDeadlines,
		IsCompliant: p.OverdueDeadlines == 0,
		Score:       score,
	}

	if p.OverdueDeadlines > 0 {
		check.Issues = append(check.Issues,
			fmt.Sprintf("%d tax deadline(s) are overdue", p.OverdueDeadlines))
		check.Recommendations = append(check.Recommendations,
			"settle overdue obligations first; interest and penalties accrue daily")
	}

	return check
}

// checkRateApplication verifies the VAT rate classification applied to
// transactions matched what the rules require
func (s *ComplianceService) checkRateApplication(p params.ComplianceContextParams) business.ComplianceCheck {
	score := 100 - p.MisappliedRateCount*10
	if score < 0 {
		score = 0
	}

	check := business.ComplianceCheck{
		CheckType:   business.CheckTypeRateApplication,
		IsCompliant: p.MisappliedRateCount == 0,
		Score:       score,
	}

	if p.MisappliedRateCount > 0 {
		check.Issues = append(check.Issues,
			fmt.Sprintf("%d of %d checked transactions used the wrong VAT rate classification",
				p.MisappliedRateCount, p.CheckedTransactions))
		check.Recommendations = append(check.Recommendations,
			"review rate classification for the flagged transactions and correct the next return")
	}

	return check
}

// checkCorporationTax verifies CT filing and payment when a return is due
func (s *ComplianceService) checkCorporationTax(p params.ComplianceContextParams) business.ComplianceCheck {
	check := business.ComplianceCheck{
		CheckType:   business.CheckTypeCorporationTax,
		IsCompliant: true,
		Score:       100,
	}

	if !p.CtReturnIsDue {
		return check
	}

	if !p.CtReturnFiled {
		check.IsCompliant = false
		check.Score = 40
		check.Issues = append(check.Issues, "Corporation Tax return is due but has not been filed")
		check.Recommendations = append(check.Recommendations, "file the CT600 return; late filing penalties escalate over time")
		return check
	}

	if !p.CtPaidOnTime {
		check.IsCompliant = false
		check.Score = 70
		check.Issues = append(check.Issues, "Corporation Tax was not paid by the statutory date")
		check.Recommendations = append(check.Recommendations, "pay the outstanding liability and review payment scheduling")
	}

	return check
}
