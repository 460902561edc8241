package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/attendance"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// attendanceService defines the minimal interface needed by AttendanceHandler.
type attendanceService interface {
	Board(ctx context.Context, day time.Time, query string, shift domain.Shift) (attendance.Board, error)
	History(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	SignIn(ctx context.Context, input attendance.SignInInput) error
	SignOut(ctx context.Context, input attendance.SignOutInput) error
}

// AttendanceHandler serves attendance REST endpoints.
type AttendanceHandler struct {
	svc attendanceService
	log *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc attendanceService, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, log: logger.With("handler", "attendance")}
}

type attendanceRecordResponse struct {
	StaffID string  `json:"staffId"`
	Date    string  `json:"date"`
	Shift   string  `json:"shift"`
	SignIn  string  `json:"signIn"`
	SignOut *string `json:"signOut"`
}

type boardRowResponse struct {
	Staff   staffResponse              `json:"staff"`
	Records []attendanceRecordResponse `json:"records"`
}

type boardSummaryResponse struct {
	Present   int `json:"present"`
	Morning   int `json:"morning"`
	Evening   int `json:"evening"`
	MorningIn int `json:"morningIn"`
	EveningIn int `json:"eveningIn"`
}

type boardResponse struct {
	Date        string               `json:"date"`
	DateDisplay string               `json:"dateDisplay"`
	Rows        []boardRowResponse   `json:"rows"`
	Summary     boardSummaryResponse `json:"summary"`
}

type signInRequest struct {
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
	Shift   string `json:"shift"`
}

type signOutRequest struct {
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
}

// Board handles GET /api/attendance?date=2024-03-01&q=amin&shift=morning.
// An unknown shift value is treated as no filter.
func (h *AttendanceHandler) Board(w http.ResponseWriter, r *http.Request) {
	day, err := dateParam(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	board, err := h.svc.Board(r.Context(), day, r.URL.Query().Get("q"), domain.Shift(r.URL.Query().Get("shift")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows := make([]boardRowResponse, 0, len(board.Rows))
	for _, row := range board.Rows {
		rows = append(rows, boardRowResponse{
			Staff:   toStaffResponse(row.Staff),
			Records: toAttendanceResponses(row.Records),
		})
	}

	writeJSON(w, http.StatusOK, boardResponse{
		Date:        daytime.FormatInput(board.Date),
		DateDisplay: daytime.FormatDisplay(board.Date),
		Rows:        rows,
		Summary:     toSummaryResponse(board.Summary),
	})
}

// History handles GET /api/staff/{id}/attendance.
func (h *AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"records": toAttendanceResponses(records),
	})
}

// SignIn handles POST /api/attendance/sign-in.
func (h *AttendanceHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	day, err := parseBodyDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err = h.svc.SignIn(r.Context(), attendance.SignInInput{
		StaffID: req.StaffID,
		Date:    day,
		Shift:   domain.Shift(req.Shift),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SignOut handles POST /api/attendance/sign-out.
func (h *AttendanceHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req signOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	day, err := parseBodyDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	err = h.svc.SignOut(r.Context(), attendance.SignOutInput{
		StaffID: req.StaffID,
		Date:    day,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseBodyDate parses a YYYY-MM-DD body field, empty meaning today.
func parseBodyDate(raw string) (time.Time, error) {
	if raw == "" {
		return daytime.DayStart(time.Now()), nil
	}
	day, err := daytime.ParseInput(raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return day, nil
}

func toAttendanceResponses(records []domain.AttendanceRecord) []attendanceRecordResponse {
	out := make([]attendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, attendanceRecordResponse{
			StaffID: rec.StaffID,
			Date:    daytime.FormatInput(rec.Date),
			Shift:   rec.Shift.String(),
			SignIn:  daytime.FormatClock(rec.SignInTime),
			SignOut: clockOrNil(rec.SignOutTime),
		})
	}
	return out
}

func toSummaryResponse(sum attendance.Summary) boardSummaryResponse {
	return boardSummaryResponse{
		Present:   sum.Present,
		Morning:   sum.Morning,
		Evening:   sum.Evening,
		MorningIn: sum.MorningIn,
		EveningIn: sum.EveningIn,
	}
}
