package worktime

import (
	"sort"

	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/garageworks/workshop-backend-go/internal/pkg/timeofday"
)

// DefaultMergeGapMinutes coalesces near-adjacent sessions: a stop at
// 12:00 followed by a start at 12:01 is one continuous block. Tunable
// via config; the 1-minute default absorbs clock rounding noise.
const DefaultMergeGapMinutes = 1

type span struct {
	start int
	end   int // normalized, may exceed one day for overnight sessions
}

// MergeSessions coalesces overlapping and near-adjacent session windows
// for one worker-day into disjoint merged intervals. Sessions with
// unparseable times contribute nothing. Output order follows merge
// order, not clock order; callers summing totals must not rely on it.
func MergeSessions(sessions []worktime.SessionWindow, gapTolerance int) []worktime.MergedInterval {
	if gapTolerance < 0 {
		gapTolerance = DefaultMergeGapMinutes
	}

	// Zero-padded "HH:MM" sorts correctly as a string.
	sorted := make([]worktime.SessionWindow, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var merged []span
	for _, s := range sorted {
		start, ok := timeofday.Parse(s.Start)
		if !ok {
			continue
		}
		end, ok := timeofday.Parse(s.End)
		if !ok {
			continue
		}
		end = timeofday.NormalizeEnd(start, end)

		placed := false
		for i := range merged {
			if end >= merged[i].start-gapTolerance && start <= merged[i].end+gapTolerance {
				if start < merged[i].start {
					merged[i].start = start
				}
				if end > merged[i].end {
					merged[i].end = end
				}
				placed = true
				break
			}
		}
		if !placed {
			merged = append(merged, span{start: start, end: end})
		}
	}

	intervals := make([]worktime.MergedInterval, 0, len(merged))
	for _, m := range merged {
		intervals = append(intervals, worktime.MergedInterval{
			Start: timeofday.Render(m.start),
			End:   timeofday.Render(m.end),
		})
	}
	return intervals
}
