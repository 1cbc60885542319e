package business

// ValidationResult carries the outcome of a reference-number validation.
// Errors fail the value outright; warnings flag something worth a look
// without rejecting it, so a caller can batch-validate a whole import.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AddError records a validation failure and marks the result invalid
func (r *ValidationResult) AddError(msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, msg)
}

// AddWarning records a non-fatal observation
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
