package finance

import "github.com/shiftdesk/shiftdesk-backend/internal/domain"

// DaySummary holds totals derived from a set of financial records.
// Net may go negative when expenses exceed revenue.
type DaySummary struct {
	CashSales   int64
	OnlineSales int64
	Revenue     int64
	Expenses    int64
	Net         int64
}

// Summarize totals the given records. An empty set yields all zeros.
func Summarize(records []domain.FinancialRecord) DaySummary {
	var sum DaySummary
	for _, rec := range records {
		sum.CashSales += rec.CashSales
		sum.OnlineSales += rec.OnlineSales
		sum.Expenses += rec.Expenses
	}
	sum.Revenue = sum.CashSales + sum.OnlineSales
	sum.Net = sum.Revenue - sum.Expenses
	return sum
}
