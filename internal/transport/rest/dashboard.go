package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/service/dashboard"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
	"github.com/shiftdesk/shiftdesk-backend/pkg/money"
)

// dashboardService defines the minimal interface needed by DashboardHandler.
type dashboardService interface {
	Overview(ctx context.Context, day time.Time) (dashboard.Overview, error)
}

// DashboardHandler serves the overview REST endpoint.
type DashboardHandler struct {
	svc   dashboardService
	money *money.Formatter
	log   *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, formatter *money.Formatter, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc:   svc,
		money: formatter,
		log:   logger.With("handler", "dashboard"),
	}
}

type dashboardStaffResponse struct {
	Active      int `json:"active"`
	Deactivated int `json:"deactivated"`
}

type dashboardResponse struct {
	Date        string                 `json:"date"`
	DateDisplay string                 `json:"dateDisplay"`
	Attendance  boardSummaryResponse   `json:"attendance"`
	Finance     financeSummaryResponse `json:"finance"`
	Staff       dashboardStaffResponse `json:"staff"`
}

// Overview handles GET /api/dashboard?date=2024-03-01.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	day, err := dateParam(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Overview(r.Context(), day)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Date:        daytime.FormatInput(out.Date),
		DateDisplay: daytime.FormatDisplay(out.Date),
		Attendance:  toSummaryResponse(out.Attendance),
		Finance: financeSummaryResponse{
			CashSales:      out.Finance.CashSales,
			OnlineSales:    out.Finance.OnlineSales,
			Revenue:        out.Finance.Revenue,
			Expenses:       out.Finance.Expenses,
			Net:            out.Finance.Net,
			RevenueDisplay: h.money.Format(out.Finance.Revenue),
			ExpenseDisplay: h.money.Format(out.Finance.Expenses),
			NetDisplay:     h.money.Format(out.Finance.Net),
		},
		Staff: dashboardStaffResponse{
			Active:      out.ActiveStaff,
			Deactivated: out.DeactivatedStaff,
		},
	})
}
