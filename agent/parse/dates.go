// Package parse turns the loosely-structured date and time literals the
// dialogue engine extracts from user utterances into canonical forms. The
// recognized vocabularies are deliberately tiny; anything outside them passes
// through untouched on the assumption the caller already sent a canonical
// value. Keeping that permissive contract behind interfaces lets the tables
// grow without touching the tool layer.
package parse

import (
	"fmt"
	"strings"
	"time"
)

// TargetYear anchors the fixed month-name table.
const TargetYear = 2025

const dateLayout = "2006-01-02"

// MoveInDateParser resolves a natural-language move-in hint to YYYY-MM-DD.
type MoveInDateParser interface {
	Resolve(hint string) string
}

// TourDateParser resolves a tour-date literal to YYYY-MM-DD.
type TourDateParser interface {
	Parse(raw string) (string, error)
}

// FixedMoveInDates maps a handful of month names to the first of that month
// in TargetYear. Unrecognized hints come back unchanged, empty included.
type FixedMoveInDates struct{}

func (FixedMoveInDates) Resolve(hint string) string {
	switch strings.ToLower(strings.TrimSpace(hint)) {
	case "july":
		return fmt.Sprintf("%d-07-01", TargetYear)
	case "august":
		return fmt.Sprintf("%d-08-01", TargetYear)
	}
	return hint
}

// RelativeTourDates understands "tomorrow" and "next week" relative to the
// wall clock. Other non-empty literals pass through as already-canonical.
type RelativeTourDates struct {
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (p RelativeTourDates) Parse(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("tour date is required")
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	switch strings.ToLower(trimmed) {
	case "tomorrow":
		return now().AddDate(0, 0, 1).Format(dateLayout), nil
	case "next week":
		return now().AddDate(0, 0, 7).Format(dateLayout), nil
	}
	return trimmed, nil
}
