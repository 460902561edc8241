package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceRecord_Presence(t *testing.T) {
	t.Parallel()

	signIn := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)
	signOut := signIn.Add(8 * time.Hour)

	in := AttendanceRecord{StaffID: "s1", Shift: ShiftMorning, SignInTime: signIn}
	assert.True(t, in.IsSignedIn())
	assert.True(t, in.IsCurrentlyIn())

	out := AttendanceRecord{StaffID: "s1", Shift: ShiftMorning, SignInTime: signIn, SignOutTime: &signOut}
	assert.True(t, out.IsSignedIn())
	assert.False(t, out.IsCurrentlyIn())

	var none AttendanceRecord
	assert.False(t, none.IsSignedIn())
	assert.False(t, none.IsCurrentlyIn())
}

func TestFinancialRecord_TotalCash(t *testing.T) {
	t.Parallel()

	r := FinancialRecord{CashSales: 100, OnlineSales: 50, Expenses: 30}
	assert.Equal(t, int64(150), r.TotalCash())
}
