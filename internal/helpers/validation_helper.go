package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kerbside/kerbside-api/internal/types/business"
)

var (
	vatNumberPattern = regexp.MustCompile(`^GB\d{9}(\d{3})?$`)
	utrPattern       = regexp.MustCompile(`^\d{10}$`)
)

// ValidateVatNumber checks a UK VAT registration number. Accepts the 9 or
// 12 digit form with a GB prefix; spaces are ignored. Returns a structured
// result so callers can batch-validate without aborting on the first bad
// value.
func ValidateVatNumber(vatNumber string) business.ValidationResult {
	result := business.ValidationResult{IsValid: true}

	normalized := strings.ToUpper(strings.ReplaceAll(vatNumber, " ", ""))
	if normalized == "" {
		result.AddError("VAT number is required")
		return result
	}

	if normalized != vatNumber {
		result.AddWarning(fmt.Sprintf("VAT number normalized from %q to %q", vatNumber, normalized))
	}

	if !vatNumberPattern.MatchString(normalized) {
		result.AddError("VAT number must be GB followed by 9 or 12 digits")
	}

	return result
}

// ValidateUtr checks a 10-digit Unique Taxpayer Reference
func ValidateUtr(utr string) business.ValidationResult {
	result := business.ValidationResult{IsValid: true}

	normalized := strings.ReplaceAll(utr, " ", "")
	if normalized == "" {
		result.AddError("UTR is required")
		return result
	}

	if !utrPattern.MatchString(normalized) {
		result.AddError("UTR must be exactly 10 digits")
	}

	return result
}
