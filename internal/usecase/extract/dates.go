package extract

import (
	"regexp"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	weekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
)

// resolveDateToken resolves a single date phrase against the reference
// date. The second return is false when the token is unrecognized so the
// caller can apply the default.
func resolveDateToken(token string, referenceDate time.Time) (time.Time, bool) {
	normalized := strings.ToLower(strings.Trim(strings.TrimSpace(token), ".,!"))
	if normalized == "" {
		return time.Time{}, false
	}

	switch {
	case normalized == "tomorrow":
		return dayStart(referenceDate).AddDate(0, 0, 1), true
	case normalized == "today":
		return dayStart(referenceDate), true
	case normalized == "eod":
		return dayStart(referenceDate).Add(17 * time.Hour), true
	case strings.Contains(normalized, "next week"):
		return dayStart(referenceDate).AddDate(0, 0, 7), true
	case strings.Contains(normalized, "next month"):
		return dayStart(referenceDate).AddDate(0, 0, 30), true
	}

	if isoDateRe.MatchString(normalized) {
		if due, err := time.Parse("2006-01-02", normalized); err == nil {
			return due, true
		}
		return time.Time{}, false
	}

	if target, ok := weekdays[normalized]; ok {
		return nextWeekday(referenceDate, target), true
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of the target weekday strictly
// after the reference date; a same-day match lands a full week out.
func nextWeekday(referenceDate time.Time, target time.Weekday) time.Time {
	offset := int(target) - int(referenceDate.Weekday())
	if offset <= 0 {
		offset += 7
	}
	return dayStart(referenceDate).AddDate(0, 0, offset)
}

// dayStart truncates a time to midnight in its own location
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
