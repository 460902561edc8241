package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attendanceServiceMock struct {
	BoardFunc   func(ctx context.Context, day time.Time, query string, shift domain.Shift) (attendance.Board, error)
	HistoryFunc func(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	SignInFunc  func(ctx context.Context, input attendance.SignInInput) error
	SignOutFunc func(ctx context.Context, input attendance.SignOutInput) error
}

func (m *attendanceServiceMock) Board(ctx context.Context, day time.Time, query string, shift domain.Shift) (attendance.Board, error) {
	return m.BoardFunc(ctx, day, query, shift)
}

func (m *attendanceServiceMock) History(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	return m.HistoryFunc(ctx, staffID)
}

func (m *attendanceServiceMock) SignIn(ctx context.Context, input attendance.SignInInput) error {
	return m.SignInFunc(ctx, input)
}

func (m *attendanceServiceMock) SignOut(ctx context.Context, input attendance.SignOutInput) error {
	return m.SignOutFunc(ctx, input)
}

func TestAttendanceHandler_Board(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)

	svc := &attendanceServiceMock{
		BoardFunc: func(_ context.Context, gotDay time.Time, query string, shift domain.Shift) (attendance.Board, error) {
			assert.Equal(t, day, gotDay)
			assert.Empty(t, query)
			assert.Empty(t, shift)
			return attendance.Board{
				Date: day,
				Rows: []attendance.Row{
					{
						Staff: domain.StaffRecord{StaffID: "s1", FullName: "Amina", Role: domain.StaffRoleStaff, IsActive: true},
						Records: []domain.AttendanceRecord{
							{
								StaffID:     "s1",
								Date:        day,
								Shift:       domain.ShiftMorning,
								SignInTime:  day.Add(8 * time.Hour),
								SignOutTime: &out,
							},
						},
					},
				},
				Summary: attendance.Summary{Present: 1, Morning: 1},
			}, nil
		},
	}
	h := NewAttendanceHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/attendance?date=2024-03-01", nil)
	rec := httptest.NewRecorder()

	h.Board(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp boardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2024-03-01", resp.Date)
	assert.Equal(t, "Friday, 1 Mar 2024", resp.DateDisplay)
	require.Len(t, resp.Rows, 1)
	require.Len(t, resp.Rows[0].Records, 1)
	assert.Equal(t, "08:00", resp.Rows[0].Records[0].SignIn)
	require.NotNil(t, resp.Rows[0].Records[0].SignOut)
	assert.Equal(t, "14:00", *resp.Rows[0].Records[0].SignOut)
	assert.Equal(t, 1, resp.Summary.Present)
}

func TestAttendanceHandler_Board_BadDate(t *testing.T) {
	t.Parallel()

	h := NewAttendanceHandler(&attendanceServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/attendance?date=tomorrow", nil)
	rec := httptest.NewRecorder()

	h.Board(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_SignIn(t *testing.T) {
	t.Parallel()

	var got attendance.SignInInput
	svc := &attendanceServiceMock{
		SignInFunc: func(_ context.Context, input attendance.SignInInput) error {
			got = input
			return nil
		},
	}
	h := NewAttendanceHandler(svc, testLogger())

	body := `{"staffId":"s1","date":"2024-03-01","shift":"morning"}`
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignIn(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", got.StaffID)
	assert.Equal(t, domain.ShiftMorning, got.Shift)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.Date)
}

func TestAttendanceHandler_SignIn_Duplicate409(t *testing.T) {
	t.Parallel()

	svc := &attendanceServiceMock{
		SignInFunc: func(context.Context, attendance.SignInInput) error {
			return domain.ErrAlreadyExists
		},
	}
	h := NewAttendanceHandler(svc, testLogger())

	body := `{"staffId":"s1","date":"2024-03-01","shift":"morning"}`
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-in", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignIn(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAttendanceHandler_SignOut_NoPriorSignIn404(t *testing.T) {
	t.Parallel()

	svc := &attendanceServiceMock{
		SignOutFunc: func(context.Context, attendance.SignOutInput) error {
			return domain.ErrNotFound
		},
	}
	h := NewAttendanceHandler(svc, testLogger())

	body := `{"staffId":"s1","date":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/sign-out", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SignOut(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_History_ViaRouter(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := &attendanceServiceMock{
		HistoryFunc: func(_ context.Context, staffID string) ([]domain.AttendanceRecord, error) {
			assert.Equal(t, "s1", staffID)
			return []domain.AttendanceRecord{
				{StaffID: "s1", Date: day, Shift: domain.ShiftMorning, SignInTime: day.Add(8 * time.Hour)},
			}, nil
		},
	}

	mux := http.NewServeMux()
	h := NewAttendanceHandler(svc, testLogger())
	mux.HandleFunc("GET /api/staff/{id}/attendance", h.History)

	req := httptest.NewRequest(http.MethodGet, "/api/staff/s1/attendance", nil)
	rec := httptest.NewRecorder()

	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records []attendanceRecordResponse `json:"records"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "2024-03-01", resp.Records[0].Date)
	assert.Nil(t, resp.Records[0].SignOut)
}
