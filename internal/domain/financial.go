package domain

import "time"

// FinancialRecord holds the sales and expense totals for one day and
// shift. The core service keeps at most one record per (date, shift) with
// upsert semantics. Amounts are whole non-negative currency units.
type FinancialRecord struct {
	Date        time.Time
	Shift       Shift
	CashSales   int64
	OnlineSales int64
	Expenses    int64
}

// TotalCash is the combined cash and online sales for the shift.
func (f FinancialRecord) TotalCash() int64 {
	return f.CashSales + f.OnlineSales
}
