package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// StatsDateLayout is the MM/DD/YYYY form stats.nba.com expects in date filters.
const StatsDateLayout = "01/02/2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseDateIn parses a YYYY-MM-DD date string as midnight in loc.
func ParseDateIn(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StatsDate formats a time as MM/DD/YYYY.
func StatsDate(t time.Time) string {
	return t.Format(StatsDateLayout)
}

// DateRange lists every day from start to end inclusive, stopping early at now. Dates
// are YYYY-MM-DD in now's location; an empty end means now.
func DateRange(start, end string, now time.Time) ([]string, error) {
	from, err := ParseDateIn(start, now.Location())
	if err != nil {
		return nil, err
	}
	last := now
	if end != "" {
		to, err := ParseDateIn(end, now.Location())
		if err != nil {
			return nil, err
		}
		last = to
	}
	var dates []string
	for d := from; !d.After(last) && !d.After(now); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates, nil
}
