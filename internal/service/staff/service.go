// Package staff implements roster operations: listing, registering, and
// deactivating staff members.
package staff

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
)

// roster defines the data access the staff service needs.
type roster interface {
	AllStaff(ctx context.Context) ([]domain.StaffRecord, error)
	AddStaff(ctx context.Context, rec domain.StaffRecord) error
	DeactivateStaff(ctx context.Context, staffID string) error
}

// Service implements roster screen operations.
type Service struct {
	log   *slog.Logger
	store roster
}

// NewService creates a new staff service instance.
func NewService(logger *slog.Logger, store roster) *Service {
	return &Service{
		log:   logger.With("service", "staff"),
		store: store,
	}
}

// List holds the roster partitioned by the active flag. Active is
// filtered by the search query, if any; DeactivatedCount always counts
// the full inactive set.
type List struct {
	Active           []domain.StaffRecord
	Inactive         []domain.StaffRecord
	DeactivatedCount int
}

// List returns the roster partitioned into active and deactivated
// members. A non-empty query narrows the active list by case-insensitive
// name match.
func (s *Service) List(ctx context.Context, query string) (List, error) {
	all, err := s.store.AllStaff(ctx)
	if err != nil {
		return List{}, fmt.Errorf("staff.List: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	out := List{Active: []domain.StaffRecord{}, Inactive: []domain.StaffRecord{}}
	for _, rec := range all {
		if !rec.IsActive {
			out.Inactive = append(out.Inactive, rec)
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(rec.FullName), query) {
			continue
		}
		out.Active = append(out.Active, rec)
	}
	out.DeactivatedCount = len(out.Inactive)

	sort.Slice(out.Active, func(i, j int) bool {
		return out.Active[i].FullName < out.Active[j].FullName
	})

	return out, nil
}

// Add registers a new staff member under a freshly generated id.
// A core-service refusal for a colliding id surfaces as ErrAlreadyExists.
func (s *Service) Add(ctx context.Context, input AddInput) (domain.StaffRecord, error) {
	if err := input.Validate(); err != nil {
		return domain.StaffRecord{}, err
	}

	rec := domain.StaffRecord{
		StaffID:  domain.NewStaffID(),
		FullName: strings.TrimSpace(input.FullName),
		Role:     input.Role,
		IsActive: true,
	}

	if err := s.store.AddStaff(ctx, rec); err != nil {
		return domain.StaffRecord{}, fmt.Errorf("staff.Add: %w", err)
	}

	s.log.InfoContext(ctx, "staff added",
		slog.String("staff_id", rec.StaffID),
		slog.String("role", rec.Role.String()),
	)

	return rec, nil
}

// Deactivate flips the member's active flag off. The record itself is
// never deleted.
func (s *Service) Deactivate(ctx context.Context, staffID string) error {
	if strings.TrimSpace(staffID) == "" {
		return domain.NewValidationError("staffId", "required")
	}

	if err := s.store.DeactivateStaff(ctx, staffID); err != nil {
		return fmt.Errorf("staff.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "staff deactivated", slog.String("staff_id", staffID))
	return nil
}
