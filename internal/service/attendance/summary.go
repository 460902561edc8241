package attendance

import "github.com/shiftdesk/shiftdesk-backend/internal/domain"

// Summary holds presence counts for one day. Present counts signed-in
// records, so a member who worked both shifts counts twice; MorningIn
// and EveningIn count records without a sign-out yet.
type Summary struct {
	Present   int
	Morning   int
	Evening   int
	MorningIn int
	EveningIn int
}

// Summarize derives presence counts from one day's attendance records.
func Summarize(records []domain.AttendanceRecord) Summary {
	var sum Summary

	for _, rec := range records {
		if !rec.IsSignedIn() {
			continue
		}
		sum.Present++
		switch rec.Shift {
		case domain.ShiftMorning:
			sum.Morning++
			if rec.IsCurrentlyIn() {
				sum.MorningIn++
			}
		case domain.ShiftEvening:
			sum.Evening++
			if rec.IsCurrentlyIn() {
				sum.EveningIn++
			}
		}
	}

	return sum
}
