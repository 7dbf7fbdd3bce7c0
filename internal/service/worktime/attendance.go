package worktime

import (
	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/pkg/timeofday"
)

// attendanceCountStart is the 08:30 floor for counted attendance.
// Distinct from the morning-break start shift: this one applies to the
// badge-in time whether or not a morning break is configured. Paid work
// does not start being counted before 08:30 even when the badge-in was
// earlier.
const attendanceCountStart = 8*60 + 30

// ComputeAttendanceMinutes computes net attended minutes from a
// clock-in/clock-out pair, subtracting break-window overlap. Missing or
// malformed clock times yield zero; stale cached figures are never used
// as a fallback.
func ComputeAttendanceMinutes(clockIn, clockOut string, catalog breakwindow.Catalog, ignoreBefore0830 bool) int {
	in, ok := timeofday.Parse(clockIn)
	if !ok {
		return 0
	}
	out, ok := timeofday.Parse(clockOut)
	if !ok {
		return 0
	}

	if ignoreBefore0830 && in < attendanceCountStart {
		in = attendanceCountStart
	}
	out = timeofday.NormalizeEnd(in, out)

	base := out - in
	if base < 0 {
		base = 0
	}

	breakTotal := 0
	for _, w := range catalog.Windows() {
		wEnd := timeofday.NormalizeEnd(w.StartMin, w.EndMin)
		breakTotal += timeofday.Overlap(in, out, w.StartMin, wEnd)
	}

	net := base - breakTotal
	if net < 0 {
		net = 0
	}
	return net
}
