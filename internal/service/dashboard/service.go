// Package dashboard composes the landing screen overview: today's
// presence counts, financial totals, and roster size in one call.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/attendance"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/finance"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// dashboardStore defines the data access the dashboard needs.
type dashboardStore interface {
	AllStaff(ctx context.Context) ([]domain.StaffRecord, error)
	AttendanceByDate(ctx context.Context, day time.Time) ([]domain.AttendanceRecord, error)
	FinancialByRange(ctx context.Context, start, end time.Time) ([]domain.FinancialRecord, error)
}

// Service implements the overview screen.
type Service struct {
	log   *slog.Logger
	store dashboardStore
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, store dashboardStore) *Service {
	return &Service{
		log:   logger.With("service", "dashboard"),
		store: store,
	}
}

// Overview is the one-day snapshot shown on the landing screen.
type Overview struct {
	Date             time.Time
	Attendance       attendance.Summary
	Finance          finance.DaySummary
	ActiveStaff      int
	DeactivatedStaff int
}

// Overview builds the snapshot for the given day.
func (s *Service) Overview(ctx context.Context, day time.Time) (Overview, error) {
	day = daytime.DayStart(day)

	staff, err := s.store.AllStaff(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("dashboard.Overview: %w", err)
	}
	records, err := s.store.AttendanceByDate(ctx, day)
	if err != nil {
		return Overview{}, fmt.Errorf("dashboard.Overview: %w", err)
	}
	financials, err := s.store.FinancialByRange(ctx, day, day)
	if err != nil {
		return Overview{}, fmt.Errorf("dashboard.Overview: %w", err)
	}

	out := Overview{
		Date:       day,
		Attendance: attendance.Summarize(records),
		Finance:    finance.Summarize(financials),
	}
	for _, member := range staff {
		if member.IsActive {
			out.ActiveStaff++
		} else {
			out.DeactivatedStaff++
		}
	}

	return out, nil
}
