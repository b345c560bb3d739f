package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// RentalDays computes the number of billable days for an inclusive
// calendar-date range. The charge is the span between the two dates with
// a minimum of one day, so a same-day rental bills as a single day.
func RentalDays(startDate, endDate string) (int, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalPriceCents computes the total charge for a rental period at the
// given daily rate.
func RentalPriceCents(startDate, endDate string, dailyRateCents int32) (int32, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return int32(days) * dailyRateCents, nil
}

// DateCovered reports whether date falls inside the inclusive range
// [startDate, endDate]. Malformed ranges never cover anything.
func DateCovered(date, startDate, endDate string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	start, err := ParseDate(startDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// PeriodsOverlap reports whether two inclusive date ranges share at
// least one day.
func PeriodsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	as, err := ParseDate(aStart)
	if err != nil {
		return false
	}
	ae, err := ParseDate(aEnd)
	if err != nil {
		return false
	}
	bs, err := ParseDate(bStart)
	if err != nil {
		return false
	}
	be, err := ParseDate(bEnd)
	if err != nil {
		return false
	}
	return !as.After(be) && !bs.After(ae)
}
