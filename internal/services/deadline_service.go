package services

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/constants"
	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/api/responses"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// DeadlineService generates statutory deadlines and advances their
// lifecycle. Records live in an in-memory registry; all mutation goes
// through the service mutex so a manual completion can never race a
// status-advancement pass on the same record.
type DeadlineService struct {
	logger    *zap.Logger
	mu        sync.Mutex
	deadlines map[uuid.UUID]*business.TaxDeadline
}

// NewDeadlineService creates a new deadline service with an empty registry
func NewDeadlineService() *DeadlineService {
	return &DeadlineService{
		logger:    logger.Log,
		deadlines: make(map[uuid.UUID]*business.TaxDeadline),
	}
}

// DaysUntilDue returns the whole days between today and the due date,
// rounding up. Negative once the due date has passed.
func DaysUntilDue(dueDate, today time.Time) int {
	return int(math.Ceil(dueDate.Sub(today).Hours() / 24))
}

// GenerateYearlyDeadlines emits the statutory deadlines for a calendar
// year and registers them: quarterly VAT submission and payment pairs due
// at the end of the month following each quarter, the Corporation Tax
// payment at the month-end nine months after the period end, and monthly
// payroll submissions on the 19th of the following month.
func (s *DeadlineService) GenerateYearlyDeadlines(year int) []business.TaxDeadline {
	var generated []business.TaxDeadline

	for q := 1; q <= 4; q++ {
		// Day 0 of month 3q+2 normalizes to the last day of the month
		// following the quarter end (Q4 lands in January of year+1).
		due := time.Date(year, time.Month(3*q+2), 0, 0, 0, 0, 0, time.UTC)
		period := fmt.Sprintf("Q%d", q)

		generated = append(generated, business.TaxDeadline{
			ID:          uuid.New(),
			Kind:        business.DeadlineKindVatSubmission,
			Description: fmt.Sprintf("VAT return submission %s %d", period, year),
			DueDate:     due,
			Status:      business.DeadlineStatusUpcoming,
			TaxYear:     year,
			TaxPeriod:   period,
		}, business.TaxDeadline{
			ID:          uuid.New(),
			Kind:        business.DeadlineKindVatPayment,
			Description: fmt.Sprintf("VAT payment %s %d", period, year),
			DueDate:     due,
			Status:      business.DeadlineStatusUpcoming,
			TaxYear:     year,
			TaxPeriod:   period,
		})
	}

	// Month-end nine months after 31 December.
	ctDue := time.Date(year+1, time.October, 0, 0, 0, 0, 0, time.UTC)
	generated = append(generated, business.TaxDeadline{
		ID:          uuid.New(),
		Kind:        business.DeadlineKindCorporationTax,
		Description: fmt.Sprintf("Corporation Tax payment FY %d", year),
		DueDate:     ctDue,
		Status:      business.DeadlineStatusUpcoming,
		TaxYear:     year,
		TaxPeriod:   fmt.Sprintf("FY%d", year),
	})

	for m := 1; m <= 12; m++ {
		due := time.Date(year, time.Month(m+1), constants.PayrollSubmissionDay, 0, 0, 0, 0, time.UTC)
		period := fmt.Sprintf("%d-%02d", year, m)

		generated = append(generated, business.TaxDeadline{
			ID:          uuid.New(),
			Kind:        business.DeadlineKindPayrollSubmission,
			Description: fmt.Sprintf("Payroll submission %s", period),
			DueDate:     due,
			Status:      business.DeadlineStatusUpcoming,
			TaxYear:     year,
			TaxPeriod:   period,
		})
	}

	s.mu.Lock()
	for i := range generated {
		d := generated[i]
		s.deadlines[d.ID] = &d
	}
	s.mu.Unlock()

	s.logger.Info("generated yearly deadlines",
		zap.Int("year", year),
		zap.Int("count", len(generated)))

	sortByDueDate(generated)
	return generated
}

// AdvanceDeadlines recomputes the status of each supplied deadline against
// today and returns the updated records plus any reminders that fire. The
// pass is idempotent and pure: terminal records are returned untouched and
// the caller keeps ownership of the slice.
//
// Reminder matching is an exact comparison against the fixed day offsets.
// A pass skipped on the matching day permanently misses that reminder.
func AdvanceDeadlines(deadlines []business.TaxDeadline, today time.Time) ([]business.TaxDeadline, []business.Reminder) {
	updated := make([]business.TaxDeadline, 0, len(deadlines))
	var reminders []business.Reminder

	for _, d := range deadlines {
		if d.Status.Terminal() {
			updated = append(updated, d)
			continue
		}

		days := DaysUntilDue(d.DueDate, today)
		d.Status = classifyStatus(days)

		if !d.ReminderSent && reminderDayMatch(days) {
			d.ReminderSent = true
			reminders = append(reminders, business.Reminder{
				DeadlineID:   d.ID,
				Kind:         d.Kind,
				Description:  d.Description,
				DueDate:      d.DueDate,
				DaysUntilDue: days,
				TaxYear:      d.TaxYear,
				TaxPeriod:    d.TaxPeriod,
			})
		}

		updated = append(updated, d)
	}

	return updated, reminders
}

// Register adds externally held deadlines to the registry, typically
// records restored from whatever store the caller persists them in.
// Existing records with the same id are replaced.
func (s *DeadlineService) Register(deadlines ...business.TaxDeadline) {
	s.mu.Lock()
	for i := range deadlines {
		d := deadlines[i]
		s.deadlines[d.ID] = &d
	}
	s.mu.Unlock()
}

// AdvanceAll runs a status-advancement pass over the registry
func (s *DeadlineService) AdvanceAll(today time.Time) *responses.AdvanceDeadlinesResult {
	s.mu.Lock()
	current := make([]business.TaxDeadline, 0, len(s.deadlines))
	for _, d := range s.deadlines {
		current = append(current, *d)
	}

	updated, reminders := AdvanceDeadlines(current, today)
	for i := range updated {
		*s.deadlines[updated[i].ID] = updated[i]
	}
	s.mu.Unlock()

	if len(reminders) > 0 {
		s.logger.Info("deadline reminders due",
			zap.Int("count", len(reminders)))
	}

	sortByDueDate(updated)
	return &responses.AdvanceDeadlinesResult{
		Deadlines: updated,
		Reminders: reminders,
	}
}

// Get returns a copy of the deadline with the given id
func (s *DeadlineService) Get(id uuid.UUID) (*business.TaxDeadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deadlines[id]
	if !ok {
		return nil, fmt.Errorf("deadline %s: %w", id, business.ErrDeadlineNotFound)
	}
	copied := *d
	return &copied, nil
}

// List returns a copy of every registered deadline sorted by due date
func (s *DeadlineService) List() []business.TaxDeadline {
	s.mu.Lock()
	all := make([]business.TaxDeadline, 0, len(s.deadlines))
	for _, d := range s.deadlines {
		all = append(all, *d)
	}
	s.mu.Unlock()

	sortByDueDate(all)
	return all
}

// Complete marks a deadline as completed with the supplied timestamps, or
// the current time when none are given. Completed and cancelled records
// reject any further transition.
func (s *DeadlineService) Complete(p params.CompleteDeadlineParams) (*business.TaxDeadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deadlines[p.DeadlineID]
	if !ok {
		return nil, fmt.Errorf("deadline %s: %w", p.DeadlineID, business.ErrDeadlineNotFound)
	}
	if d.Status.Terminal() {
		return nil, fmt.Errorf("deadline %s is %s: %w", d.ID, d.Status, business.ErrIllegalTransition)
	}

	now := time.Now().UTC()
	completedAt := now
	if p.SubmittedAt != nil {
		d.SubmittedAt = p.SubmittedAt
		completedAt = *p.SubmittedAt
	}
	if p.PaidAt != nil {
		d.PaidAt = p.PaidAt
		completedAt = *p.PaidAt
	}

	d.Status = business.DeadlineStatusCompleted
	d.IsCompleted = true
	d.CompletedAt = &completedAt
	if p.Notes != "" {
		d.Notes = p.Notes
	}

	s.logger.Info("completed deadline",
		zap.String("deadline_id", d.ID.String()),
		zap.String("kind", string(d.Kind)),
		zap.String("tax_period", d.TaxPeriod))

	copied := *d
	return &copied, nil
}

// Cancel transitions a deadline to the cancelled terminal state
func (s *DeadlineService) Cancel(id uuid.UUID, notes string) (*business.TaxDeadline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deadlines[id]
	if !ok {
		return nil, fmt.Errorf("deadline %s: %w", id, business.ErrDeadlineNotFound)
	}
	if d.Status.Terminal() {
		return nil, fmt.Errorf("deadline %s is %s: %w", d.ID, d.Status, business.ErrIllegalTransition)
	}

	d.Status = business.DeadlineStatusCancelled
	if notes != "" {
		d.Notes = notes
	}

	s.logger.Info("cancelled deadline",
		zap.String("deadline_id", d.ID.String()),
		zap.String("kind", string(d.Kind)))

	copied := *d
	return &copied, nil
}

func classifyStatus(daysUntilDue int) business.DeadlineStatus {
	switch {
	case daysUntilDue < 0:
		return business.DeadlineStatusOverdue
	case daysUntilDue <= constants.DueSoonWindowDays:
		return business.DeadlineStatusDueSoon
	default:
		return business.DeadlineStatusUpcoming
	}
}

func reminderDayMatch(daysUntilDue int) bool {
	for _, offset := range constants.ReminderDayOffsets {
		if daysUntilDue == offset {
			return true
		}
	}
	return false
}

func sortByDueDate(deadlines []business.TaxDeadline) {
	sort.SliceStable(deadlines, func(i, j int) bool {
		if deadlines[i].DueDate.Equal(deadlines[j].DueDate) {
			return deadlines[i].Kind < deadlines[j].Kind
		}
		return deadlines[i].DueDate.Before(deadlines[j].DueDate)
	})
}
