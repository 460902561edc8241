package domain

// UserProfile is the per-caller profile kept by the core service.
// StaffID optionally links the caller to a roster entry.
type UserProfile struct {
	StaffID *string
	Name    string
}
