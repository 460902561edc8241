// Package profile implements caller profile and role operations. The
// caller principal always comes from the request context; only role
// assignment names another principal explicitly.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/pkg/ctxutil"
)

// profileStore defines the data access the profile service needs.
type profileStore interface {
	CallerProfile(ctx context.Context) (*domain.UserProfile, error)
	SaveCallerProfile(ctx context.Context, profile domain.UserProfile) error
	CallerRole(ctx context.Context) (domain.UserRole, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignRole(ctx context.Context, principal string, role domain.UserRole) error
}

// Service implements caller profile operations.
type Service struct {
	log   *slog.Logger
	store profileStore
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, store profileStore) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		store: store,
	}
}

// Get returns the caller's profile, or nil when none was saved yet.
// Anonymous callers have no profile to fetch.
func (s *Service) Get(ctx context.Context) (*domain.UserProfile, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.store.CallerProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	return profile, nil
}

// Save writes the caller's profile, replacing any previous one.
func (s *Service) Save(ctx context.Context, input SaveInput) (domain.UserProfile, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return domain.UserProfile{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		Name:    strings.TrimSpace(input.Name),
		StaffID: input.StaffID,
	}

	if err := s.store.SaveCallerProfile(ctx, profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("profile.Save: %w", err)
	}

	s.log.InfoContext(ctx, "profile saved")
	return profile, nil
}

// Role returns the caller's authorization level. Anonymous callers are
// guests, no core round trip needed.
func (s *Service) Role(ctx context.Context) (domain.UserRole, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return domain.UserRoleGuest, nil
	}

	role, err := s.store.CallerRole(ctx)
	if err != nil {
		return "", fmt.Errorf("profile.Role: %w", err)
	}
	return role, nil
}

// IsAdmin reports whether the caller holds the admin role.
func (s *Service) IsAdmin(ctx context.Context) (bool, error) {
	if _, ok := ctxutil.PrincipalFromCtx(ctx); !ok {
		return false, nil
	}

	admin, err := s.store.IsCallerAdmin(ctx)
	if err != nil {
		return false, fmt.Errorf("profile.IsAdmin: %w", err)
	}
	return admin, nil
}

// AssignRole sets another principal's authorization level. The transport
// layer gates this behind the admin role.
func (s *Service) AssignRole(ctx context.Context, principal string, role domain.UserRole) error {
	if strings.TrimSpace(principal) == "" {
		return domain.NewValidationError("principal", "required")
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "must be admin, user, or guest")
	}

	if err := s.store.AssignRole(ctx, principal, role); err != nil {
		return fmt.Errorf("profile.AssignRole: %w", err)
	}

	s.log.InfoContext(ctx, "role assigned",
		slog.String("principal", principal),
		slog.String("role", role.String()),
	)
	return nil
}
