package timeutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kesterhols/volunteer-engine/pkg/core/model"
)

// ToMinutes converts a "HH:MM" time string to minutes since midnight.
// Malformed input returns an InputError rather than a zero value so callers
// can tell "00:00" apart from garbage.
func ToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, &model.InputError{Field: "time", Msg: fmt.Sprintf("expected HH:MM, got %q", t)}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &model.InputError{Field: "time", Msg: fmt.Sprintf("invalid hour in %q", t)}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &model.InputError{Field: "time", Msg: fmt.Sprintf("invalid minute in %q", t)}
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, &model.InputError{Field: "time", Msg: fmt.Sprintf("time %q out of range", t)}
	}

	return hours*60 + minutes, nil
}

// FromMinutes converts minutes since midnight back to a "HH:MM" string.
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether two same-day intervals overlap.
// Intervals are half-open: [09:00, 10:00) and [10:00, 11:00) do not overlap.
func Overlaps(start1, end1, start2, end2 int) bool {
	return start1 < end2 && end1 > start2
}

// OverlapMinutes returns the length of the overlap between two same-day
// intervals in minutes, or 0 when they are disjoint.
func OverlapMinutes(start1, end1, start2, end2 int) int {
	if !Overlaps(start1, end1, start2, end2) {
		return 0
	}
	return min(end1, end2) - max(start1, start2)
}
