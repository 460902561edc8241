package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/profile"
	"github.com/shiftdesk/shiftdesk-backend/internal/transport/middleware"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Save(ctx context.Context, input profile.SaveInput) (domain.UserProfile, error)
	Role(ctx context.Context) (domain.UserRole, error)
	IsAdmin(ctx context.Context) (bool, error)
	AssignRole(ctx context.Context, principal string, role domain.UserRole) error
}

// ProfileHandler serves caller profile and role REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileResponse struct {
	Name    string  `json:"name"`
	StaffID *string `json:"staffId"`
}

type saveProfileRequest struct {
	Name    string  `json:"name"`
	StaffID *string `json:"staffId"`
}

type roleResponse struct {
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

type assignRoleRequest struct {
	Principal string `json:"principal"`
	Role      string `json:"role"`
}

// Get handles GET /api/profile. A caller with no saved profile gets a
// 200 with a null body rather than a 404, so the client can distinguish
// "no profile yet" from a failed request.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if p == nil {
		writeJSON(w, http.StatusOK, map[string]any{"profile": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"profile": profileResponse{Name: p.Name, StaffID: p.StaffID},
	})
}

// Save handles PUT /api/profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Save(r.Context(), profile.SaveInput{
		Name:    req.Name,
		StaffID: req.StaffID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Name: p.Name, StaffID: p.StaffID})
}

// Role handles GET /api/me/role.
func (h *ProfileHandler) Role(w http.ResponseWriter, r *http.Request) {
	role, err := h.svc.Role(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, roleResponse{
		Role:    role.String(),
		IsAdmin: role.IsAdmin(),
	})
}

// IsAdmin handles GET /api/me/is-admin. Asks the core service rather
// than trusting only the token claim.
func (h *ProfileHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.svc.IsAdmin(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": admin})
}

// AssignRole handles POST /api/admin/roles. Admin only.
func (h *ProfileHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req assignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.AssignRole(r.Context(), req.Principal, domain.UserRole(req.Role)); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
