package profile

import (
	"strings"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

// SaveInput holds parameters for saving the caller's profile.
type SaveInput struct {
	Name    string
	StaffID *string
}

// Validate validates the save input.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.StaffID != nil && strings.TrimSpace(*i.StaffID) == "" {
		errs = append(errs, domain.FieldError{Field: "staffId", Message: "must not be blank when set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
