package domain

// Shift is one of the two daily work periods. Both attendance and
// financial records are partitioned by it. Values are the literal wire tags.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

func (s Shift) String() string { return string(s) }

func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftEvening:
		return true
	}
	return false
}

// StaffRole is the job role of a staff member.
type StaffRole string

const (
	StaffRoleManager StaffRole = "manager"
	StaffRoleStaff   StaffRole = "staff"
)

func (r StaffRole) String() string { return string(r) }

func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleManager, StaffRoleStaff:
		return true
	}
	return false
}

// UserRole is the authorization level of an application caller,
// assigned and persisted by the core service.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
	UserRoleGuest UserRole = "guest"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleUser, UserRoleGuest:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
