package attendance

import (
	"strings"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

// SignInInput holds parameters for recording a sign-in.
type SignInInput struct {
	StaffID string
	Date    time.Time
	Shift   domain.Shift
}

// Validate validates the sign-in input. A shift must always be named.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.StaffID) == "" {
		errs = append(errs, domain.FieldError{Field: "staffId", Message: "required"})
	}
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

// SignOutInput holds parameters for recording a sign-out.
type SignOutInput struct {
	StaffID string
	Date    time.Time
}

// Validate validates the sign-out input.
func (i SignOutInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.StaffID) == "" {
		errs = append(errs, domain.FieldError{Field: "staffId", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
