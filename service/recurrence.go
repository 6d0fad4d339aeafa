package service

import (
	"time"

	"go-finance-api/model"
)

// nextRecurringDate is the next occurrence after date, or nil when the
// interval is unknown.
func nextRecurringDate(date time.Time, interval model.RecurringInterval) *time.Time {
	var next time.Time
	switch interval {
	case model.RecurringDaily:
		next = date.AddDate(0, 0, 1)
	case model.RecurringWeekly:
		next = date.AddDate(0, 0, 7)
	case model.RecurringMonthly:
		next = date.AddDate(0, 1, 0)
	case model.RecurringYearly:
		next = date.AddDate(1, 0, 0)
	default:
		return nil
	}
	return &next
}
