// Package attendance implements the daily attendance board: sign-ins,
// sign-outs, and the per-day roster view with presence counts.
package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// attendanceStore defines the data access the attendance service needs.
type attendanceStore interface {
	AllStaff(ctx context.Context) ([]domain.StaffRecord, error)
	AttendanceByDate(ctx context.Context, day time.Time) ([]domain.AttendanceRecord, error)
	AttendanceByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	RecordSignIn(ctx context.Context, staffID string, day time.Time, shift domain.Shift) error
	RecordSignOut(ctx context.Context, staffID string, day time.Time) error
}

// Service implements attendance board operations.
type Service struct {
	log   *slog.Logger
	store attendanceStore
}

// NewService creates a new attendance service instance.
func NewService(logger *slog.Logger, store attendanceStore) *Service {
	return &Service{
		log:   logger.With("service", "attendance"),
		store: store,
	}
}

// Row joins one active staff member with their attendance records for
// the board's day. Records holds at most one entry per shift.
type Row struct {
	Staff   domain.StaffRecord
	Records []domain.AttendanceRecord
}

// Board is the attendance view for a single day: one row per active
// staff member plus presence counts.
type Board struct {
	Date    time.Time
	Rows    []Row
	Summary Summary
}

// Board builds the attendance view for the given day. A non-empty query
// narrows rows by case-insensitive name match and a valid shift keeps
// only rows with a record for that shift; the summary always covers the
// full day regardless of either filter.
func (s *Service) Board(ctx context.Context, day time.Time, query string, shift domain.Shift) (Board, error) {
	day = daytime.DayStart(day)

	staff, err := s.store.AllStaff(ctx)
	if err != nil {
		return Board{}, fmt.Errorf("attendance.Board: %w", err)
	}
	records, err := s.store.AttendanceByDate(ctx, day)
	if err != nil {
		return Board{}, fmt.Errorf("attendance.Board: %w", err)
	}

	byStaff := make(map[string][]domain.AttendanceRecord, len(records))
	for _, rec := range records {
		byStaff[rec.StaffID] = append(byStaff[rec.StaffID], rec)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	board := Board{Date: day, Rows: []Row{}, Summary: Summarize(records)}
	for _, member := range staff {
		if !member.IsActive {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(member.FullName), query) {
			continue
		}
		recs := byStaff[member.StaffID]
		if shift.IsValid() {
			kept := make([]domain.AttendanceRecord, 0, len(recs))
			for _, rec := range recs {
				if rec.Shift == shift {
					kept = append(kept, rec)
				}
			}
			if len(kept) == 0 {
				continue
			}
			recs = kept
		}
		board.Rows = append(board.Rows, Row{
			Staff:   member,
			Records: recs,
		})
	}

	sort.Slice(board.Rows, func(i, j int) bool {
		return board.Rows[i].Staff.FullName < board.Rows[j].Staff.FullName
	})

	return board, nil
}

// History returns all attendance records on file for one staff member,
// most recent day first.
func (s *Service) History(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	if strings.TrimSpace(staffID) == "" {
		return nil, domain.NewValidationError("staffId", "required")
	}

	fetched, err := s.store.AttendanceByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("attendance.History: %w", err)
	}

	// The store may hand back a cached slice shared with other callers;
	// sorting it in place would race. Sort a copy.
	records := make([]domain.AttendanceRecord, len(fetched))
	copy(records, fetched)

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

// SignIn records a sign-in for the given staff member, day, and shift.
// The core service rejects a second sign-in for the same triple; that
// surfaces as ErrAlreadyExists.
func (s *Service) SignIn(ctx context.Context, input SignInInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	day := daytime.DayStart(input.Date)
	if err := s.store.RecordSignIn(ctx, input.StaffID, day, input.Shift); err != nil {
		return fmt.Errorf("attendance.SignIn: %w", err)
	}

	s.log.InfoContext(ctx, "sign-in recorded",
		slog.String("staff_id", input.StaffID),
		slog.String("date", daytime.FormatInput(day)),
		slog.String("shift", input.Shift.String()),
	)
	return nil
}

// SignOut stamps the sign-out time on the member's open record for the
// day. Without a prior sign-in the core service rejects it.
func (s *Service) SignOut(ctx context.Context, input SignOutInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	day := daytime.DayStart(input.Date)
	if err := s.store.RecordSignOut(ctx, input.StaffID, day); err != nil {
		return fmt.Errorf("attendance.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "sign-out recorded",
		slog.String("staff_id", input.StaffID),
		slog.String("date", daytime.FormatInput(day)),
	)
	return nil
}
