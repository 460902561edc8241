package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/finance"
	"github.com/shiftdesk/shiftdesk-backend/pkg/daytime"
	"github.com/shiftdesk/shiftdesk-backend/pkg/money"
)

// financeService defines the minimal interface needed by FinanceHandler.
type financeService interface {
	Day(ctx context.Context, day time.Time) (finance.DayView, error)
	Range(ctx context.Context, start, end time.Time) (finance.RangeView, error)
	Upsert(ctx context.Context, input finance.UpsertInput) (domain.FinancialRecord, error)
}

// FinanceHandler serves financial REST endpoints.
type FinanceHandler struct {
	svc   financeService
	money *money.Formatter
	log   *slog.Logger
}

// NewFinanceHandler creates a FinanceHandler.
func NewFinanceHandler(svc financeService, formatter *money.Formatter, logger *slog.Logger) *FinanceHandler {
	return &FinanceHandler{
		svc:   svc,
		money: formatter,
		log:   logger.With("handler", "finance"),
	}
}

type financialRecordResponse struct {
	Date        string `json:"date"`
	Shift       string `json:"shift"`
	CashSales   int64  `json:"cashSales"`
	OnlineSales int64  `json:"onlineSales"`
	TotalCash   int64  `json:"totalCash"`
	Expenses    int64  `json:"expenses"`
}

type financeSummaryResponse struct {
	CashSales      int64  `json:"cashSales"`
	OnlineSales    int64  `json:"onlineSales"`
	Revenue        int64  `json:"revenue"`
	Expenses       int64  `json:"expenses"`
	Net            int64  `json:"net"`
	RevenueDisplay string `json:"revenueDisplay"`
	ExpenseDisplay string `json:"expenseDisplay"`
	NetDisplay     string `json:"netDisplay"`
}

type financeDayResponse struct {
	Date    string                   `json:"date"`
	Morning *financialRecordResponse `json:"morning"`
	Evening *financialRecordResponse `json:"evening"`
	Summary financeSummaryResponse   `json:"summary"`
}

type financeRangeResponse struct {
	Start   string                    `json:"start"`
	End     string                    `json:"end"`
	Records []financialRecordResponse `json:"records"`
	Summary financeSummaryResponse    `json:"summary"`
}

type upsertFinanceRequest struct {
	Date        string `json:"date"`
	Shift       string `json:"shift"`
	CashSales   string `json:"cashSales"`
	OnlineSales string `json:"onlineSales"`
	Expenses    string `json:"expenses"`
}

// Get handles GET /api/finance?date=2024-03-01 for a single day, or
// GET /api/finance?start=...&end=... for a range.
func (h *FinanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
		h.getRange(w, r)
		return
	}

	day, err := dateParam(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.Day(r.Context(), day)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, financeDayResponse{
		Date:    daytime.FormatInput(view.Date),
		Morning: toFinancialResponse(view.Morning),
		Evening: toFinancialResponse(view.Evening),
		Summary: h.toSummaryResponse(view.Summary),
	})
}

func (h *FinanceHandler) getRange(w http.ResponseWriter, r *http.Request) {
	start, err := requiredDateParam(r, "start")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	end, err := requiredDateParam(r, "end")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.Range(r.Context(), start, end)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	records := make([]financialRecordResponse, 0, len(view.Records))
	for i := range view.Records {
		records = append(records, *toFinancialResponse(&view.Records[i]))
	}

	writeJSON(w, http.StatusOK, financeRangeResponse{
		Start:   daytime.FormatInput(view.Start),
		End:     daytime.FormatInput(view.End),
		Records: records,
		Summary: h.toSummaryResponse(view.Summary),
	})
}

// Upsert handles PUT /api/finance.
func (h *FinanceHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertFinanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	day, err := parseBodyDate(req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rec, err := h.svc.Upsert(r.Context(), finance.UpsertInput{
		Date:        day,
		Shift:       domain.Shift(req.Shift),
		CashSales:   req.CashSales,
		OnlineSales: req.OnlineSales,
		Expenses:    req.Expenses,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFinancialResponse(&rec))
}

func toFinancialResponse(rec *domain.FinancialRecord) *financialRecordResponse {
	if rec == nil {
		return nil
	}
	return &financialRecordResponse{
		Date:        daytime.FormatInput(rec.Date),
		Shift:       rec.Shift.String(),
		CashSales:   rec.CashSales,
		OnlineSales: rec.OnlineSales,
		TotalCash:   rec.TotalCash(),
		Expenses:    rec.Expenses,
	}
}

func (h *FinanceHandler) toSummaryResponse(sum finance.DaySummary) financeSummaryResponse {
	return financeSummaryResponse{
		CashSales:      sum.CashSales,
		OnlineSales:    sum.OnlineSales,
		Revenue:        sum.Revenue,
		Expenses:       sum.Expenses,
		Net:            sum.Net,
		RevenueDisplay: h.money.Format(sum.Revenue),
		ExpenseDisplay: h.money.Format(sum.Expenses),
		NetDisplay:     h.money.Format(sum.Net),
	}
}
