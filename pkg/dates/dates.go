package dates

import "time"

// ISOFormat is the canonical date layout used in persisted records.
const ISOFormat = "2006-01-02"

// brFormat is the legacy DD/MM/YYYY layout still found in older exports.
const brFormat = "02/01/2006"

const day = 24 * time.Hour

// Normalize truncates a time to midnight (UTC of its own location is kept)
// so that comparisons happen at day granularity.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseFlexible parses a date string, trying ISO yyyy-MM-dd first and
// falling back to DD/MM/YYYY. The boolean reports success; callers must
// treat failure as "exclude from date-based logic", never as a fatal error.
func ParseFlexible(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(ISOFormat, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(brFormat, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Format renders a time in the canonical ISO layout.
func Format(t time.Time) string { return t.Format(ISOFormat) }

// AddPeriod advances a date by one schedule period. Unknown frequencies and
// "custom" advance by one month.
func AddPeriod(t time.Time, frequency string) time.Time {
	switch frequency {
	case "weekly":
		return t.AddDate(0, 0, 7)
	case "biweekly":
		return t.AddDate(0, 0, 14)
	case "quarterly":
		return t.AddDate(0, 3, 0)
	case "yearly":
		return t.AddDate(1, 0, 0)
	default: // monthly, custom, anything unrecognized
		return t.AddDate(0, 1, 0)
	}
}

// DaysBetween returns the signed whole-day difference a − b, truncated
// toward zero.
func DaysBetween(a, b time.Time) int {
	return int(a.Sub(b) / day)
}

// SameMonth reports whether two times fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
