package business

import (
	"time"

	"github.com/google/uuid"
)

// DeadlineKind identifies the statutory obligation a deadline tracks
type DeadlineKind string

const (
	DeadlineKindVatSubmission     DeadlineKind = "vat_submission"
	DeadlineKindVatPayment        DeadlineKind = "vat_payment"
	DeadlineKindCorporationTax    DeadlineKind = "corporation_tax_payment"
	DeadlineKindPayrollSubmission DeadlineKind = "payroll_submission"
)

// DeadlineStatus is the lifecycle state of a deadline
type DeadlineStatus string

const (
	DeadlineStatusUpcoming  DeadlineStatus = "upcoming"
	DeadlineStatusDueSoon   DeadlineStatus = "due_soon"
	DeadlineStatusOverdue   DeadlineStatus = "overdue"
	DeadlineStatusCompleted DeadlineStatus = "completed"
	DeadlineStatusCancelled DeadlineStatus = "cancelled"
)

// Terminal reports whether the status permits no further transition
func (s DeadlineStatus) Terminal() bool {
	return s == DeadlineStatusCompleted || s == DeadlineStatusCancelled
}

// TaxDeadline is a single statutory obligation instance. Status is
// recomputed from the due date on every scheduler pass; Completed and
// Cancelled are sticky and short-circuit that computation.
type TaxDeadline struct {
	ID           uuid.UUID      `json:"id"`
	Kind         DeadlineKind   `json:"kind"`
	Description  string         `json:"description"`
	DueDate      time.Time      `json:"due_date"`
	Status       DeadlineStatus `json:"status"`
	IsCompleted  bool           `json:"is_completed"`
	ReminderSent bool           `json:"reminder_sent"`
	TaxYear      int            `json:"tax_year"`
	TaxPeriod    string         `json:"tax_period"`
	SubmittedAt  *time.Time     `json:"submitted_at,omitempty"`
	PaidAt       *time.Time     `json:"paid_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Notes        string         `json:"notes,omitempty"`
}

// Reminder is the payload handed to a dispatcher when a deadline crosses
// one of the fixed reminder offsets
type Reminder struct {
	DeadlineID   uuid.UUID    `json:"deadline_id"`
	Kind         DeadlineKind `json:"kind"`
	Description  string       `json:"description"`
	DueDate      time.Time    `json:"due_date"`
	DaysUntilDue int          `json:"days_until_due"`
	TaxYear      int          `json:"tax_year"`
	TaxPeriod    string       `json:"tax_period"`
}
