package business

import "errors"

// Engine error taxonomy. Out-of-range monetary inputs are not errors:
// negative profit simply falls below every threshold and yields zero tax.
var (
	// ErrInvalidRate means an unknown VAT rate classification was supplied
	ErrInvalidRate = errors.New("invalid rate classification")

	// ErrInvalidPeriod means an accounting period end does not fall after
	// its start
	ErrInvalidPeriod = errors.New("invalid accounting period")

	// ErrDeadlineNotFound means no deadline exists with the given id
	ErrDeadlineNotFound = errors.New("deadline not found")

	// ErrIllegalTransition means a completed or cancelled deadline was
	// asked to change state
	ErrIllegalTransition = errors.New("illegal deadline transition")
)
