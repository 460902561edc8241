package coreapi

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// Wire types for the core service JSON API. Date fields are day instants
// (midnight UTC) as int64 nanoseconds; clock fields are plain nanosecond
// timestamps.

type wireStaff struct {
	StaffID  string `json:"staffId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func (w wireStaff) toDomain() domain.StaffRecord {
	return domain.StaffRecord{
		StaffID:  w.StaffID,
		FullName: w.FullName,
		Role:     domain.StaffRole(w.Role),
		IsActive: w.IsActive,
	}
}

type wireAttendance struct {
	StaffID     string `json:"staffId"`
	Date        int64  `json:"date"`
	Shift       string `json:"shift"`
	SignInTime  int64  `json:"signInTime"`
	SignOutTime *int64 `json:"signOutTime,omitempty"`
}

func (w wireAttendance) toDomain() domain.AttendanceRecord {
	rec := domain.AttendanceRecord{
		StaffID:    w.StaffID,
		Date:       daytime.FromNanos(w.Date),
		Shift:      domain.Shift(w.Shift),
		SignInTime: time.Unix(0, w.SignInTime).UTC(),
	}
	if w.SignOutTime != nil {
		out := time.Unix(0, *w.SignOutTime).UTC()
		rec.SignOutTime = &out
	}
	return rec
}

type wireFinancial struct {
	Date        int64 `json:"date"`
	Shift       string `json:"shift"`
	CashSales   int64 `json:"cashSales"`
	OnlineSales int64 `json:"onlineSales"`
	Expenses    int64 `json:"expenses"`
}

func (w wireFinancial) toDomain() domain.FinancialRecord {
	return domain.FinancialRecord{
		Date:        daytime.FromNanos(w.Date),
		Shift:       domain.Shift(w.Shift),
		CashSales:   w.CashSales,
		OnlineSales: w.OnlineSales,
		Expenses:    w.Expenses,
	}
}

func toWireFinancial(rec domain.FinancialRecord) wireFinancial {
	return wireFinancial{
		Date:        daytime.ToNanos(rec.Date),
		Shift:       rec.Shift.String(),
		CashSales:   rec.CashSales,
		OnlineSales: rec.OnlineSales,
		Expenses:    rec.Expenses,
	}
}

type wireProfile struct {
	StaffID *string `json:"staffId,omitempty"`
	Name    string  `json:"name"`
}

func (w wireProfile) toDomain() domain.UserProfile {
	return domain.UserProfile{StaffID: w.StaffID, Name: w.Name}
}

type addStaffRequest struct {
	StaffID  string `json:"staffId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type addStaffResponse struct {
	OK bool `json:"ok"`
}

type signInRequest struct {
	StaffID string `json:"staffId"`
	Date    int64  `json:"date"`
	Shift   string `json:"shift"`
}

type signOutRequest struct {
	StaffID string `json:"staffId"`
	Date    int64  `json:"date"`
}

type roleResponse struct {
	Role string `json:"role"`
}

type isAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type assignRoleRequest struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
}

type errorResponse struct {
	Error string `json:"error"`
}
