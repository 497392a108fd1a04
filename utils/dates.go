package utils

import (
	"fmt"
	"time"
)

// AgeInMonths returns the age in whole calendar months: plain year and month
// subtraction, not elapsed days divided by 30. The day of month is ignored.
func AgeInMonths(birthDate, now time.Time) int {
	months := (now.Year()-birthDate.Year())*12 + int(now.Month()) - int(birthDate.Month())
	if months < 0 {
		return 0
	}
	return months
}

// FormatAge renders an age for display: months under a year, years plus
// remainder months after that.
func FormatAge(birthDate, now time.Time) string {
	months := AgeInMonths(birthDate, now)
	if months < 12 {
		return fmt.Sprintf("%d tháng", months)
	}
	years := months / 12
	rest := months % 12
	if rest == 0 {
		return fmt.Sprintf("%d tuổi", years)
	}
	return fmt.Sprintf("%d tuổi %d tháng", years, rest)
}

// FormatDateTimeVi renders a timestamp the way the reminder emails show it.
func FormatDateTimeVi(t time.Time) string {
	return t.Format("15:04 02/01/2006")
}

// ParseDate accepts either a plain date ("2006-01-02", taken as midnight
// local time) or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
