package domain

import "time"

// AttendanceRecord tracks one staff member's presence for one day and
// shift. The core service enforces uniqueness per (staffId, date, shift).
// SignOutTime, when present, is never before SignInTime.
type AttendanceRecord struct {
	StaffID     string
	Date        time.Time
	Shift       Shift
	SignInTime  time.Time
	SignOutTime *time.Time
}

// IsSignedIn reports whether a sign-in was recorded.
func (a AttendanceRecord) IsSignedIn() bool {
	return !a.SignInTime.IsZero()
}

// IsCurrentlyIn reports whether the staff member is signed in and has not
// signed out yet.
func (a AttendanceRecord) IsCurrentlyIn() bool {
	return a.IsSignedIn() && a.SignOutTime == nil
}
