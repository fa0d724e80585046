package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// TourTimeParser resolves a tour-time literal to 24-hour HH:MM.
type TourTimeParser interface {
	Parse(raw string) (string, error)
}

// ClockTimes normalizes trailing am/pm markers with an optional minute
// component to 24-hour form, with 12-hour-clock wraparound: 12am maps to
// 00:xx and 12pm stays 12:xx. Literals without a marker pass through as
// already-canonical 24-hour values.
type ClockTimes struct{}

func (ClockTimes) Parse(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("tour time is required")
	}

	lowered := strings.ToLower(trimmed)
	switch {
	case strings.HasSuffix(lowered, "pm"):
		return normalizeTwelveHour(strings.TrimSuffix(lowered, "pm"), 12)
	case strings.HasSuffix(lowered, "am"):
		return normalizeTwelveHour(strings.TrimSuffix(lowered, "am"), 0)
	}
	return trimmed, nil
}

func normalizeTwelveHour(raw string, offset int) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", fmt.Errorf("invalid hour %q", strings.TrimSpace(parts[0]))
	}
	if hour == 12 {
		hour = 0
	}
	hour += offset

	minute := 0
	if len(parts) == 2 {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return "", fmt.Errorf("invalid minutes %q", strings.TrimSpace(parts[1]))
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
