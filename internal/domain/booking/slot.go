package booking

import (
	"time"

	"github.com/hourslot/booking-api/internal/httperr"
)

// ===============================
// Slot math
// ===============================

// All calendar arithmetic is anchored to UTC. A single canonical clock keeps
// the day partition reproducible regardless of where a request comes from.

const (
	dayLayout     = "2006-01-02"
	compactLayout = "2006-01-02 15:04"
)

// ParseInstant accepts RFC 3339 or "2006-01-02 15:04" (read as UTC).
func ParseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(compactLayout, raw, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidDate)
}

// NormalizeSlot truncates t to the start of its containing hour in UTC.
// Two instants inside the same hour normalize to the same slot.
func NormalizeSlot(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

// ValidateSlot rejects slots that have already elapsed.
func ValidateSlot(slot, now time.Time) error {
	if slot.Before(now) {
		return httperr.ErrBusiness(httperr.CodePastDate)
	}
	return nil
}

// DayBounds parses a "2006-01-02" designator into the inclusive UTC pair
// [00:00:00.000, 23:59:59.999] of that day.
func DayBounds(dateStr string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	start := day
	end := day.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
