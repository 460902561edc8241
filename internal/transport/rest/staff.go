package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/staff"
)

// staffService defines the minimal interface needed by StaffHandler.
type staffService interface {
	List(ctx context.Context, query string) (staff.List, error)
	Add(ctx context.Context, input staff.AddInput) (domain.StaffRecord, error)
	Deactivate(ctx context.Context, staffID string) error
}

// StaffHandler serves roster REST endpoints.
type StaffHandler struct {
	svc staffService
	log *slog.Logger
}

// NewStaffHandler creates a StaffHandler.
func NewStaffHandler(svc staffService, logger *slog.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, log: logger.With("handler", "staff")}
}

type staffResponse struct {
	StaffID  string `json:"staffId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

type staffListResponse struct {
	Active           []staffResponse `json:"active"`
	Inactive         []staffResponse `json:"inactive"`
	DeactivatedCount int             `json:"deactivatedCount"`
}

type addStaffRequest struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// List handles GET /api/staff?q=amin.
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, staffListResponse{
		Active:           toStaffResponses(list.Active),
		Inactive:         toStaffResponses(list.Inactive),
		DeactivatedCount: list.DeactivatedCount,
	})
}

// Add handles POST /api/staff.
func (h *StaffHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Add(r.Context(), staff.AddInput{
		FullName: req.FullName,
		Role:     domain.StaffRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStaffResponse(rec))
}

// Deactivate handles POST /api/staff/{id}/deactivate.
func (h *StaffHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toStaffResponse(rec domain.StaffRecord) staffResponse {
	return staffResponse{
		StaffID:  rec.StaffID,
		FullName: rec.FullName,
		Role:     rec.Role.String(),
		IsActive: rec.IsActive,
	}
}

func toStaffResponses(recs []domain.StaffRecord) []staffResponse {
	out := make([]staffResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toStaffResponse(rec))
	}
	return out
}
