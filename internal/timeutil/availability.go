package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateRange is one contiguous availability window. End is never before Start;
// a single-day window has Start == End. Dates are midnight in the reference
// instant's location, no time-of-day component.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String renders the range as "November 9-26", or "November 26" for a
// single day.
func (r DateRange) String() string {
	if r.Start.Equal(r.End) {
		return fmt.Sprintf("%s %d", r.Start.Month(), r.Start.Day())
	}
	if r.Start.Month() != r.End.Month() || r.Start.Year() != r.End.Year() {
		return fmt.Sprintf("%s %d-%s %d", r.Start.Month(), r.Start.Day(), r.End.Month(), r.End.Day())
	}
	return fmt.Sprintf("%s %d-%d", r.Start.Month(), r.Start.Day(), r.End.Day())
}

// FilterResult reports whether any availability survives until a scheduled
// send date, and the re-serialized text to advertise if so.
type FilterResult struct {
	IsValid     bool   `json:"is_valid"`
	DisplayText string `json:"display_text"`
}

// monthsByName maps lowercase month tokens (full names plus the standard
// three/four letter abbreviations) to their calendar month.
var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// ParseDateRanges parses a free-text availability phrase into date ranges
// anchored to referenceYear. Clauses look like "November 9-26th", "Nov 9 - 26"
// or "December 5"; ordinal suffixes are ignored. A clause whose end date falls
// before now (truncated to its calendar day) is bumped one year forward, so
// "January 5-12" typed in late December means next January.
//
// Malformed input never errors; unrecognized text simply contributes no
// ranges. Days are validated against the month's real length, so "February 30"
// drops the clause instead of normalizing into March.
func ParseDateRanges(phrase string, referenceYear int, now time.Time) []DateRange {
	tokens := strings.FieldsFunc(phrase, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == ';'
	})

	today := startOfDay(now)
	var ranges []DateRange

	for i := 0; i < len(tokens); i++ {
		month, ok := monthsByName[strings.ToLower(strings.Trim(tokens[i], ".:"))]
		if !ok {
			continue
		}

		// Collect the day clause: the run of tokens after the month made up
		// of digits, ordinal suffixes and hyphens ("9-26th", or "9", "-",
		// "26" when the user spaced out the hyphen).
		clause := ""
		consumed := 0
		for j := i + 1; j < len(tokens) && isDayToken(tokens[j]); j++ {
			clause += tokens[j]
			consumed++
		}
		i += consumed

		day1, day2, ok := parseDayClause(clause)
		if !ok {
			continue
		}
		if !validDay(day1, month, referenceYear) || !validDay(day2, month, referenceYear) || day2 < day1 {
			continue
		}

		start := time.Date(referenceYear, month, day1, 0, 0, 0, 0, now.Location())
		end := time.Date(referenceYear, month, day2, 0, 0, 0, 0, now.Location())
		if end.Before(today) {
			start = time.Date(referenceYear+1, month, day1, 0, 0, 0, 0, now.Location())
			end = time.Date(referenceYear+1, month, day2, 0, 0, 0, 0, now.Location())
			// Feb 29 does not exist next year; drop rather than let the
			// date normalize into March.
			if start.Month() != month || end.Month() != month {
				continue
			}
		}

		ranges = append(ranges, DateRange{Start: start, End: end})
	}

	return ranges
}

// FilterAvailabilityByDate decides whether any part of an availability phrase
// survives until daysFromNow days after the reference instant, and rewrites
// the phrase to only advertise what remains.
//
// Blank phrases and the literal "OPEN" are explicit no-fixed-dates signals and
// short-circuit to invalid. A phrase with no recognizable dates passes through
// unchanged as valid: the filter cannot claim user text expired when it never
// understood it. Fully expired ranges are dropped; a range already in progress
// at the send date is truncated to its remaining tail.
//
// referenceInstant should be the instant the user submitted the form (so the
// math follows their clock, not the server's); nil falls back to time.Now().
func FilterAvailabilityByDate(availability string, daysFromNow int, referenceInstant *time.Time) FilterResult {
	trimmed := strings.TrimSpace(availability)
	if trimmed == "" || strings.EqualFold(trimmed, "OPEN") {
		return FilterResult{IsValid: false, DisplayText: ""}
	}

	now := time.Now()
	if referenceInstant != nil {
		now = *referenceInstant
	}
	sendDate := startOfDay(now).AddDate(0, 0, daysFromNow)

	ranges := ParseDateRanges(trimmed, now.Year(), now)
	if len(ranges) == 0 {
		return FilterResult{IsValid: true, DisplayText: trimmed}
	}

	var surviving []string
	for _, r := range ranges {
		if r.End.Before(sendDate) {
			continue
		}
		if r.Start.Before(sendDate) {
			r.Start = sendDate
		}
		surviving = append(surviving, r.String())
	}

	if len(surviving) == 0 {
		return FilterResult{IsValid: false, DisplayText: ""}
	}
	return FilterResult{IsValid: true, DisplayText: strings.Join(surviving, ", ")}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isDayToken(tok string) bool {
	s := strings.ToLower(strings.TrimRight(tok, "."))
	if s == "" {
		return false
	}
	for _, suffix := range ordinalSuffixes {
		s = strings.ReplaceAll(s, suffix, "")
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// parseDayClause parses "9", "9-26" or "9-26th" (ordinal suffixes anywhere)
// into a day pair. A single day returns the same value twice.
func parseDayClause(clause string) (int, int, bool) {
	clause = strings.ToLower(strings.TrimRight(clause, "."))
	if clause == "" {
		return 0, 0, false
	}

	parts := strings.Split(clause, "-")
	if len(parts) != 1 && len(parts) != 2 {
		return 0, 0, false
	}

	days := make([]int, 0, 2)
	for _, p := range parts {
		d, ok := parseDayNumber(p)
		if !ok {
			return 0, 0, false
		}
		days = append(days, d)
	}

	if len(days) == 1 {
		return days[0], days[0], true
	}
	return days[0], days[1], true
}

// parseDayNumber strips an optional ordinal suffix and parses the day. The
// suffix is not checked for grammatical fit: "9rd" parses the same as "9th".
func parseDayNumber(s string) (int, bool) {
	for _, suffix := range ordinalSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	if s == "" {
		return 0, false
	}
	d, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

func validDay(day int, month time.Month, year int) bool {
	if day < 1 {
		return false
	}
	// Day 0 of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}
