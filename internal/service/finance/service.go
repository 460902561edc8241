// Package finance implements daily sales and expense tracking: per-shift
// record upserts and day or range views with derived totals.
package finance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
	"github.com/shiftdesk/shiftdesk-backend/pkg/money"
)

// financeStore defines the data access the finance service needs.
type financeStore interface {
	FinancialByRange(ctx context.Context, start, end time.Time) ([]domain.FinancialRecord, error)
	UpsertFinancial(ctx context.Context, rec domain.FinancialRecord) error
}

// Service implements financial tracking operations.
type Service struct {
	log   *slog.Logger
	store financeStore
}

// NewService creates a new finance service instance.
func NewService(logger *slog.Logger, store financeStore) *Service {
	return &Service{
		log:   logger.With("service", "finance"),
		store: store,
	}
}

// DayView is the financial picture for one day: the per-shift records,
// either of which may be absent, and totals across both.
type DayView struct {
	Date    time.Time
	Morning *domain.FinancialRecord
	Evening *domain.FinancialRecord
	Summary DaySummary
}

// Day returns the financial view for a single day.
func (s *Service) Day(ctx context.Context, day time.Time) (DayView, error) {
	day = daytime.DayStart(day)

	records, err := s.store.FinancialByRange(ctx, day, day)
	if err != nil {
		return DayView{}, fmt.Errorf("finance.Day: %w", err)
	}

	view := DayView{Date: day, Summary: Summarize(records)}
	for i := range records {
		switch records[i].Shift {
		case domain.ShiftMorning:
			view.Morning = &records[i]
		case domain.ShiftEvening:
			view.Evening = &records[i]
		}
	}
	return view, nil
}

// RangeView pairs the records within an inclusive date range with totals
// over the whole range.
type RangeView struct {
	Start   time.Time
	End     time.Time
	Records []domain.FinancialRecord
	Summary DaySummary
}

// Range returns the records between start and end inclusive, oldest day
// first with morning before evening within a day.
func (s *Service) Range(ctx context.Context, start, end time.Time) (RangeView, error) {
	start, end = daytime.DayStart(start), daytime.DayStart(end)
	if end.Before(start) {
		return RangeView{}, domain.NewValidationError("end", "before start")
	}

	fetched, err := s.store.FinancialByRange(ctx, start, end)
	if err != nil {
		return RangeView{}, fmt.Errorf("finance.Range: %w", err)
	}

	// The store may hand back a cached slice shared with other callers;
	// sorting it in place would race. Sort a copy.
	records := make([]domain.FinancialRecord, len(fetched))
	copy(records, fetched)

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].Shift == domain.ShiftMorning
	})

	return RangeView{
		Start:   start,
		End:     end,
		Records: records,
		Summary: Summarize(records),
	}, nil
}

// Upsert writes the record for the input's day and shift, replacing any
// previous submission for that pair. Amounts arrive as free-form strings
// and are clamped to whole non-negative units.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (domain.FinancialRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.FinancialRecord{}, err
	}

	rec := domain.FinancialRecord{
		Date:        daytime.DayStart(input.Date),
		Shift:       input.Shift,
		CashSales:   money.ParseAmount(input.CashSales),
		OnlineSales: money.ParseAmount(input.OnlineSales),
		Expenses:    money.ParseAmount(input.Expenses),
	}

	if err := s.store.UpsertFinancial(ctx, rec); err != nil {
		return domain.FinancialRecord{}, fmt.Errorf("finance.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "financial record saved",
		slog.String("date", daytime.FormatInput(rec.Date)),
		slog.String("shift", rec.Shift.String()),
		slog.Int64("revenue", rec.TotalCash()),
	)

	return rec, nil
}
