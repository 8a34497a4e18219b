package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"RFC3339", "2023-07-03T10:00:00Z", true, 2023, time.July, 3, time.RFC3339},
		{"RFC3339 with millis", "2023-07-03T10:00:00.000Z", true, 2023, time.July, 3, time.RFC3339},
		{"datetime-local", "2023-07-03T10:00", true, 2023, time.July, 3, DateLayoutLocal},
		{"ISO format", "2023-01-15", true, 2023, time.January, 15, DateLayoutISO},
		{"European format", "15.01.2023", true, 2023, time.January, 15, DateLayoutEuropean},
		{"US format", "01/15/2023", true, 2023, time.January, 15, DateLayoutUS},
		{"Full timestamp", "2023-01-15 10:30:45", true, 2023, time.January, 15, DateLayoutFull},
		{"With month name", "15-Jan-2023", true, 2023, time.January, 15, DateLayoutWithMonth},
		{"Surrounding whitespace", "  2023-01-15 ", true, 2023, time.January, 15, DateLayoutISO},
		{"Empty string", "", false, 0, 0, 0, ""},
		{"Invalid format", "not a date", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseDate(tc.dateStr, nil)

			if tc.expectedOk {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, tc.expectedFmt, format)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDate_Location(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	local, _, err := ParseDate("2023-07-03T01:00", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, local.Location())
	assert.Equal(t, "2023-07-02T23:00:00.000Z", ToISOTimestamp(local))

	explicit, _, err := ParseDate("2023-07-03T01:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, "2023-07-03T01:00:00.000Z", ToISOTimestamp(explicit))
}

func TestToISOTimestamp(t *testing.T) {
	ts := time.Date(2023, time.July, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-07-03T10:00:00.000Z", ToISOTimestamp(ts))

	withMillis := time.Date(2023, time.July, 3, 10, 0, 0, 123456789, time.UTC)
	assert.Equal(t, "2023-07-03T10:00:00.123Z", ToISOTimestamp(withMillis))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2023-01-15", ToISODate(time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC)))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "15 Jan 2023", CleanDateString("  15   Jan\t2023 "))
}

func TestTruncateToMinute(t *testing.T) {
	ts := time.Date(2023, time.July, 3, 10, 5, 42, 999, time.UTC)
	assert.Equal(t, time.Date(2023, time.July, 3, 10, 5, 0, 0, time.UTC), TruncateToMinute(ts))
}
