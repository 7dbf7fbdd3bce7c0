package worktime

import (
	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/timeofday"
)

// DeductBreaks computes the net worked minutes of one merged interval
// after subtracting break-window overlap. The per-break overlaps are
// returned for audit views. Never negative; malformed times count zero.
//
// Morning-break policy: when an active 06:00-08:30 window exists and
// the interval starts before 06:00, the start is assumed to be
// mis-recorded overnight carryover and snaps to 08:30. The morning
// window is then consumed by that shift and skipped in the overlap
// loop, which keeps the result continuous across a 06:00 start.
func DeductBreaks(interval worktime.MergedInterval, catalog breakwindow.Catalog) (int, []worktime.BreakOverlap) {
	start, ok := timeofday.Parse(interval.Start)
	if !ok {
		return 0, nil
	}
	end, ok := timeofday.Parse(interval.End)
	if !ok {
		return 0, nil
	}
	end = timeofday.NormalizeEnd(start, end)

	shifted := false
	if _, hasMorning := catalog.MorningBreak(); hasMorning && start < breakwindow.MorningBreakStartMin {
		start = breakwindow.MorningBreakEndMin
		shifted = true
	}

	base := end - start
	if base < 0 {
		base = 0
	}

	var overlaps []worktime.BreakOverlap
	breakTotal := 0
	for _, w := range catalog.Windows() {
		if shifted && w.IsMorningBreak() {
			continue
		}
		wEnd := timeofday.NormalizeEnd(w.StartMin, w.EndMin)
		ov := timeofday.Overlap(start, end, w.StartMin, wEnd)
		if end > timeofday.MinutesPerDay {
			// The interval crosses midnight, so the same wall-clock
			// window recurs on day two.
			ov += timeofday.Overlap(start, end, w.StartMin+timeofday.MinutesPerDay, wEnd+timeofday.MinutesPerDay)
		}
		if ov > 0 {
			breakTotal += ov
			overlaps = append(overlaps, worktime.BreakOverlap{Name: w.Name, Minutes: ov})
		}
	}

	net := base - breakTotal
	if net < 0 {
		net = 0
	}
	return net, overlaps
}

// ComputeWorkMinutes merges the given session windows and sums the net
// minutes of every merged interval against the break catalog.
func ComputeWorkMinutes(sessions []worktime.SessionWindow, catalog breakwindow.Catalog, gapTolerance int) int {
	total := 0
	for _, interval := range MergeSessions(sessions, gapTolerance) {
		minutes, _ := DeductBreaks(interval, catalog)
		total += minutes
	}
	return total
}
