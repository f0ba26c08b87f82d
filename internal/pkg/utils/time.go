package utils

import (
	"errors"
	"fmt"
	"freeslot-service/internal/pkg/constvars"
	"strings"
	"time"
)

var ErrEmptyDatetime = errors.New("datetime is empty")

// ParseDatetime accepts RFC 3339 timestamps as well as zone-less datetimes and
// plain dates, which are read as UTC. The result is always in UTC.
func ParseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmptyDatetime
	}

	for _, layout := range constvars.AcceptedDatetimeLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse %q as an ISO-8601 datetime", value)
}

// ParseClock parses an HH:MM wall-clock value into hour and minute.
func ParseClock(value string) (int, int, error) {
	parsed, err := time.Parse(constvars.LayoutClock, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, err
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func FormatISOMillisUTC(t time.Time) string {
	return t.UTC().Format(constvars.LayoutISOMillisUTC)
}

func FormatISOSecondsUTC(t time.Time) string {
	return t.UTC().Format(constvars.LayoutISOSecondsUTC)
}
