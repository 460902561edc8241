package finance

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

// UpsertInput holds parameters for saving one shift's financial record.
// Amount fields are raw user input; parsing clamps anything non-numeric
// or negative to zero rather than rejecting it.
type UpsertInput struct {
	Date        time.Time
	Shift       domain.Shift
	CashSales   string
	OnlineSales string
	Expenses    string
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.Shift.IsValid() {
		errs = append(errs, domain.FieldError{Field: "shift", Message: "must be morning or evening"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
