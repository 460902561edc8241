// Package store is the remote data access layer: cache-backed reads and
// invalidating writes over the core service client. Each write drops
// exactly the read scopes it can affect, so the next read of those scopes
// reflects the completed write.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/readcache"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
)

// coreClient defines the core service operations the store needs.
type coreClient interface {
	Ready() bool
	GetAllStaff(ctx context.Context) ([]domain.StaffRecord, error)
	AddStaff(ctx context.Context, rec domain.StaffRecord) (bool, error)
	DeactivateStaff(ctx context.Context, staffID string) error
	GetAttendanceByDate(ctx context.Context, day time.Time) ([]domain.AttendanceRecord, error)
	GetAttendanceByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error)
	RecordSignIn(ctx context.Context, staffID string, day time.Time, shift domain.Shift) error
	RecordSignOut(ctx context.Context, staffID string, day time.Time) error
	GetFinancialRecordsByRange(ctx context.Context, start, end time.Time) ([]domain.FinancialRecord, error)
	UpdateFinancialRecord(ctx context.Context, rec domain.FinancialRecord) error
	GetCallerUserProfile(ctx context.Context) (*domain.UserProfile, error)
	SaveCallerUserProfile(ctx context.Context, profile domain.UserProfile) error
	GetUserProfile(ctx context.Context, principal string) (*domain.UserProfile, error)
	GetCallerUserRole(ctx context.Context) (domain.UserRole, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignUserRole(ctx context.Context, principal string, role domain.UserRole) error
}

const scopeStaff = "staff"

func scopeAttendance(day time.Time) string {
	return "attendance:" + daytime.FormatInput(day)
}

func scopeAttendanceStaff(staffID string) string {
	return "attendance-staff:" + staffID
}

const scopeFinancial = "financial"

// Store wraps the core client with scoped caching.
type Store struct {
	client coreClient
	cache  *readcache.Cache
	log    *slog.Logger
}

// New creates a Store.
func New(client coreClient, cache *readcache.Cache, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		cache:  cache,
		log:    logger.With("component", "store"),
	}
}

// Ready reports whether the core service connection has been established.
func (s *Store) Ready() bool {
	return s.client.Ready()
}

// --- Reads. Until the client is ready they resolve empty rather than
// blocking or failing; per-caller profile reads are never cached. ---

func (s *Store) AllStaff(ctx context.Context) ([]domain.StaffRecord, error) {
	if !s.client.Ready() {
		return []domain.StaffRecord{}, nil
	}
	return readcache.Get(ctx, s.cache, scopeStaff, "all", s.client.GetAllStaff)
}

func (s *Store) AttendanceByDate(ctx context.Context, day time.Time) ([]domain.AttendanceRecord, error) {
	if !s.client.Ready() {
		return []domain.AttendanceRecord{}, nil
	}
	day = daytime.DayStart(day)
	return readcache.Get(ctx, s.cache, scopeAttendance(day), "all",
		func(ctx context.Context) ([]domain.AttendanceRecord, error) {
			return s.client.GetAttendanceByDate(ctx, day)
		})
}

func (s *Store) AttendanceByStaff(ctx context.Context, staffID string) ([]domain.AttendanceRecord, error) {
	if !s.client.Ready() {
		return []domain.AttendanceRecord{}, nil
	}
	return readcache.Get(ctx, s.cache, scopeAttendanceStaff(staffID), "all",
		func(ctx context.Context) ([]domain.AttendanceRecord, error) {
			return s.client.GetAttendanceByStaff(ctx, staffID)
		})
}

func (s *Store) FinancialByRange(ctx context.Context, start, end time.Time) ([]domain.FinancialRecord, error) {
	if !s.client.Ready() {
		return []domain.FinancialRecord{}, nil
	}
	start, end = daytime.DayStart(start), daytime.DayStart(end)
	key := daytime.FormatInput(start) + "/" + daytime.FormatInput(end)
	return readcache.Get(ctx, s.cache, scopeFinancial, key,
		func(ctx context.Context) ([]domain.FinancialRecord, error) {
			return s.client.GetFinancialRecordsByRange(ctx, start, end)
		})
}

// --- Writes. Failures surface as rejected operations; no retry here. ---

func (s *Store) AddStaff(ctx context.Context, rec domain.StaffRecord) error {
	ok, err := s.client.AddStaff(ctx, rec)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: staff id %s", domain.ErrAlreadyExists, rec.StaffID)
	}
	s.cache.Invalidate(scopeStaff)
	return nil
}

func (s *Store) DeactivateStaff(ctx context.Context, staffID string) error {
	if err := s.client.DeactivateStaff(ctx, staffID); err != nil {
		return err
	}
	s.cache.Invalidate(scopeStaff)
	return nil
}

func (s *Store) RecordSignIn(ctx context.Context, staffID string, day time.Time, shift domain.Shift) error {
	day = daytime.DayStart(day)
	if err := s.client.RecordSignIn(ctx, staffID, day, shift); err != nil {
		return err
	}
	s.cache.Invalidate(scopeAttendance(day))
	s.cache.Invalidate(scopeAttendanceStaff(staffID))
	return nil
}

func (s *Store) RecordSignOut(ctx context.Context, staffID string, day time.Time) error {
	day = daytime.DayStart(day)
	if err := s.client.RecordSignOut(ctx, staffID, day); err != nil {
		return err
	}
	s.cache.Invalidate(scopeAttendance(day))
	s.cache.Invalidate(scopeAttendanceStaff(staffID))
	return nil
}

func (s *Store) UpsertFinancial(ctx context.Context, rec domain.FinancialRecord) error {
	rec.Date = daytime.DayStart(rec.Date)
	if err := s.client.UpdateFinancialRecord(ctx, rec); err != nil {
		return err
	}
	s.cache.Invalidate(scopeFinancial)
	return nil
}

// --- Caller profile and role operations, uncached pass-throughs. ---

func (s *Store) CallerProfile(ctx context.Context) (*domain.UserProfile, error) {
	return s.client.GetCallerUserProfile(ctx)
}

func (s *Store) SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error {
	return s.client.SaveCallerUserProfile(ctx, profile)
}

func (s *Store) UserProfile(ctx context.Context, principal string) (*domain.UserProfile, error) {
	return s.client.GetUserProfile(ctx, principal)
}

func (s *Store) CallerRole(ctx context.Context) (domain.UserRole, error) {
	return s.client.GetCallerUserRole(ctx)
}

func (s *Store) IsCallerAdmin(ctx context.Context) (bool, error) {
	return s.client.IsCallerAdmin(ctx)
}

func (s *Store) AssignRole(ctx context.Context, principal string, role domain.UserRole) error {
	return s.client.AssignUserRole(ctx, principal, role)
}
