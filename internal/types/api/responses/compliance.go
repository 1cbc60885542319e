package responses

import (
	"time"

	"github.com/kerbside/kerbside-api/internal/types/business"
)

// ComplianceReport aggregates every compliance check into one score.
// Issues and recommendations are the flattened union across checks,
// deliberately without deduplication.
type ComplianceReport struct {
	OverallScore    int                        `json:"overall_score"`
	IsCompliant     bool                       `json:"is_compliant"`
	Checks          []business.ComplianceCheck `json:"checks"`
	Issues          []string                   `json:"issues"`
	Recommendations []string                   `json:"recommendations"`
	GeneratedAt     time.Time                  `json:"generated_at"`
}
