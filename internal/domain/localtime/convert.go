package localtime

import (
	"strconv"
	"strings"
	"time"

	"pro-stock-editor/internal/pkg/errs"
)

const (
	DateLayout    = "2006-01-02"
	TimeLayout    = "15:04"
	InstantLayout = "2006-01-02T15:04:05Z"
)

var ErrInvalidInput = errs.Mark(errs.New("invalid date or time"), errs.ErrInvalidInput)

// LocalToUTC interprets date ("YYYY-MM-DD") and clock ("HH:MM[:SS]") as wall
// time in the venue's timezone and returns the corresponding instant in UTC.
func LocalToUTC(date, clock, departementCode string) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, second, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	loc := Location(departementCode)
	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, loc)
	return local.UTC(), nil
}

// LocalToUTCInstant is LocalToUTC rendered as an ISO-8601 UTC string without
// fractional seconds, e.g. "2024-06-01T23:00:00Z".
func LocalToUTCInstant(date, clock, departementCode string) (string, error) {
	t, err := LocalToUTC(date, clock, departementCode)
	if err != nil {
		return "", err
	}
	return FormatInstant(t), nil
}

// UTCToLocal parses an ISO-8601 instant and returns it in the venue's timezone,
// truncated to the second.
func UTCToLocal(instant, departementCode string) (time.Time, error) {
	t, err := ParseInstant(instant)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(Location(departementCode)), nil
}

// UTCToLocalDateTime splits an instant into the venue's local date and HH:MM time.
func UTCToLocalDateTime(instant, departementCode string) (date string, clock string, err error) {
	local, err := UTCToLocal(instant, departementCode)
	if err != nil {
		return "", "", err
	}
	return local.Format(DateLayout), local.Format(TimeLayout), nil
}

// UTCToLocalDate keeps only the local calendar date of an instant.
func UTCToLocalDate(instant, departementCode string) (string, error) {
	date, _, err := UTCToLocalDateTime(instant, departementCode)
	return date, err
}

// EndOfDayUTCInstant returns 23:59:59 local time on date, as a UTC instant.
func EndOfDayUTCInstant(date, departementCode string) (string, error) {
	return LocalToUTCInstant(date, "23:59:59", departementCode)
}

// ClockToUTC converts a local HH:MM to the UTC HH:MM it corresponds to on the
// given day. Offsets that vary with daylight saving depend on that day.
func ClockToUTC(clock, departementCode string, on time.Time) (string, error) {
	day := on.In(Location(departementCode)).Format(DateLayout)
	t, err := LocalToUTC(day, clock, departementCode)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

// Today is the current calendar date at the venue.
func Today(now time.Time, departementCode string) string {
	return now.In(Location(departementCode)).Format(DateLayout)
}

func FormatInstant(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(InstantLayout)
}

// ParseInstant accepts RFC 3339 with or without fractional seconds or offset.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, errs.Wrapf(ErrInvalidInput, "instant %q", s)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errs.Wrapf(ErrInvalidInput, "date %q", s)
	}
	return t, nil
}

// IsValidClock reports whether s is a usable HH:MM[:SS] time of day.
func IsValidClock(s string) bool {
	_, _, _, err := parseClock(s)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

func parseClock(s string) (hour, minute, second int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, errs.Wrapf(ErrInvalidInput, "time %q", s)
	}
	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || len(p) != 2 || n < 0 || n > limits[i] {
			return 0, 0, 0, errs.Wrapf(ErrInvalidInput, "time %q", s)
		}
		values[i] = n
	}
	return values[0], values[1], values[2], nil
}
