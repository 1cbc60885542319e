package params

import (
	"time"

	"github.com/google/uuid"
)

// CompleteDeadlineParams marks a deadline as completed. Timestamps are
// optional; when absent the completion time is used.
type CompleteDeadlineParams struct {
	DeadlineID  uuid.UUID  `json:"deadline_id"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// AdvanceDeadlinesParams drives a status-advancement pass
type AdvanceDeadlinesParams struct {
	Today time.Time `json:"today"`
}
