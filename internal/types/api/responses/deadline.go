package responses

import (
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// AdvanceDeadlinesResult is the outcome of a status-advancement pass:
// the updated records plus the reminders that fired during the pass
type AdvanceDeadlinesResult struct {
	Deadlines []business.TaxDeadline `json:"deadlines"`
	Reminders []business.Reminder    `json:"reminders"`
}
