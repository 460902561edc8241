package staff

import (
	"strings"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

// AddInput holds parameters for registering a staff member.
type AddInput struct {
	FullName string
	Role     domain.StaffRole
}

// Validate validates the add input.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.FullName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be manager or staff"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
