package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shiftdesk/shiftdesk-backend/internal/domain"
	"github.com/shiftdesk/shiftdesk-backend/internal/service/finance"
	"github.com/shiftdesk/shiftdesk-backend/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type financeServiceMock struct {
	DayFunc    func(ctx context.Context, day time.Time) (finance.DayView, error)
	RangeFunc  func(ctx context.Context, start, end time.Time) (finance.RangeView, error)
	UpsertFunc func(ctx context.Context, input finance.UpsertInput) (domain.FinancialRecord, error)
}

func (m *financeServiceMock) Day(ctx context.Context, day time.Time) (finance.DayView, error) {
	return m.DayFunc(ctx, day)
}

func (m *financeServiceMock) Range(ctx context.Context, start, end time.Time) (finance.RangeView, error) {
	return m.RangeFunc(ctx, start, end)
}

func (m *financeServiceMock) Upsert(ctx context.Context, input finance.UpsertInput) (domain.FinancialRecord, error) {
	return m.UpsertFunc(ctx, input)
}

func usdFormatter(t *testing.T) *money.Formatter {
	t.Helper()
	f, err := money.NewFormatter("en-US", "USD")
	require.NoError(t, err)
	return f
}

func TestFinanceHandler_Get_Day(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	morning := domain.FinancialRecord{Date: day, Shift: domain.ShiftMorning, CashSales: 1000, OnlineSales: 250, Expenses: 300}

	svc := &financeServiceMock{
		DayFunc: func(_ context.Context, gotDay time.Time) (finance.DayView, error) {
			assert.Equal(t, day, gotDay)
			return finance.DayView{
				Date:    day,
				Morning: &morning,
				Summary: finance.Summarize([]domain.FinancialRecord{morning}),
			}, nil
		},
	}
	h := NewFinanceHandler(svc, usdFormatter(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/finance?date=2024-03-01", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp financeDayResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "2024-03-01", resp.Date)
	require.NotNil(t, resp.Morning)
	assert.Equal(t, int64(1250), resp.Morning.TotalCash)
	assert.Nil(t, resp.Evening)
	assert.Equal(t, int64(1250), resp.Summary.Revenue)
	assert.Equal(t, "$1,250", resp.Summary.RevenueDisplay)
	assert.Equal(t, int64(950), resp.Summary.Net)
}

func TestFinanceHandler_Get_Range(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	svc := &financeServiceMock{
		RangeFunc: func(_ context.Context, gotStart, gotEnd time.Time) (finance.RangeView, error) {
			assert.Equal(t, start, gotStart)
			assert.Equal(t, end, gotEnd)
			records := []domain.FinancialRecord{
				{Date: start, Shift: domain.ShiftMorning, CashSales: 100},
				{Date: end, Shift: domain.ShiftMorning, CashSales: 200},
			}
			return finance.RangeView{
				Start:   start,
				End:     end,
				Records: records,
				Summary: finance.Summarize(records),
			}, nil
		},
	}
	h := NewFinanceHandler(svc, usdFormatter(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/finance?start=2024-03-01&end=2024-03-02", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp financeRangeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, int64(300), resp.Summary.Revenue)
}

func TestFinanceHandler_Get_RangeMissingEnd(t *testing.T) {
	t.Parallel()

	h := NewFinanceHandler(&financeServiceMock{}, usdFormatter(t), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/finance?start=2024-03-01", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinanceHandler_Upsert(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	var got finance.UpsertInput
	svc := &financeServiceMock{
		UpsertFunc: func(_ context.Context, input finance.UpsertInput) (domain.FinancialRecord, error) {
			got = input
			return domain.FinancialRecord{
				Date:        day,
				Shift:       input.Shift,
				CashSales:   1251,
				OnlineSales: 0,
				Expenses:    0,
			}, nil
		},
	}
	h := NewFinanceHandler(svc, usdFormatter(t), testLogger())

	body := `{"date":"2024-03-01","shift":"evening","cashSales":"1250.6","onlineSales":"abc","expenses":"-30"}`
	req := httptest.NewRequest(http.MethodPut, "/api/finance", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ShiftEvening, got.Shift)
	assert.Equal(t, "1250.6", got.CashSales)

	var resp financialRecordResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1251), resp.CashSales)
}

func TestFinanceHandler_Upsert_InvalidShift400(t *testing.T) {
	t.Parallel()

	svc := &financeServiceMock{
		UpsertFunc: func(_ context.Context, input finance.UpsertInput) (domain.FinancialRecord, error) {
			return domain.FinancialRecord{}, input.Validate()
		},
	}
	h := NewFinanceHandler(svc, usdFormatter(t), testLogger())

	body := `{"date":"2024-03-01","shift":"night"}`
	req := httptest.NewRequest(http.MethodPut, "/api/finance", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
