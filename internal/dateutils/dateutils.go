// Package dateutils provides the date parsing and formatting used for budget entries.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted for entry dates.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutLocal     = "2006-01-02T15:04"
	DateLayoutLocalSecs = "2006-01-02T15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"

	// TimestampLayout renders UTC instants with millisecond precision, e.g. 2023-07-03T10:00:00.000Z.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// CommonFormats is the list of layouts ParseDate tries, in order.
// RFC3339 comes first so an explicit offset is never ignored; it also accepts fractional seconds.
var CommonFormats = []string{
	time.RFC3339,
	DateLayoutLocalSecs,
	DateLayoutLocal,
	DateLayoutFull,
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutWithMonth,
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate parses dateStr with the first matching layout of CommonFormats.
// Layouts without a zone are interpreted in loc (UTC when loc is nil).
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string, loc *time.Location) (time.Time, string, error) {
	if loc == nil {
		loc = time.UTC
	}
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse date: empty string")
	}

	for _, format := range CommonFormats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISOTimestamp renders t as an ISO-8601 UTC timestamp with milliseconds.
func ToISOTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString trims the string and collapses inner whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// TruncateToMinute drops seconds and sub-seconds, the precision entries are entered with.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
