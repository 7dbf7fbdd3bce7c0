package timeofday

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// Parse converts a wall-clock "HH:MM" string (seconds optional) to
// minutes since midnight. ok is false for anything that does not land
// inside a single day.
func Parse(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	total := hour*60 + minute
	if total < 0 || total >= MinutesPerDay {
		return 0, false
	}
	return total, true
}

// NormalizeEnd resolves a (start, end) pair that may cross midnight.
// When end is numerically earlier than start the window is assumed to
// continue into the next day, so a full day is added. Every place that
// compares a start/end pair must go through this, otherwise overlap
// math silently breaks for overnight sessions.
func NormalizeEnd(start, end int) int {
	if end < start {
		return end + MinutesPerDay
	}
	return end
}

// Render converts minutes since midnight back to "HH:MM". Values past
// MinutesPerDay wrap around to the next day's wall clock.
func Render(m int) string {
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}

// FromTime extracts the minute-of-day from a time.Time. The caller is
// responsible for converting to the right zone first; this is the only
// boundary where absolute timestamps become wall-clock minutes.
func FromTime(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Overlap returns the number of minutes the two half-open ranges
// [aStart, aEnd) and [bStart, bEnd) share, or zero when disjoint.
func Overlap(aStart, aEnd, bStart, bEnd int) int {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	if end <= start {
		return 0
	}
	return end - start
}
