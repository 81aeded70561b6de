package handlers

import "time"

// Reservation dates are plain calendar days, stored in UTC.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
