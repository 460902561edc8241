package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StaffRecord is a member of the roster. The staff ID is immutable once
// created; deactivation flips IsActive and is never reversed by deletion.
type StaffRecord struct {
	StaffID  string
	FullName string
	Role     StaffRole
	IsActive bool
}

// NewStaffID generates a caller-side unique staff identifier:
// a millisecond timestamp plus a short random suffix.
func NewStaffID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("staff_%d_%s", time.Now().UnixMilli(), suffix)
}
