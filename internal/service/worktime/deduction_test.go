package worktime

import (
	"testing"

	"github.com/garageworks/workshop-backend-go/internal/domain/breakwindow"
	"github.com/garageworks/workshop-backend-go/internal/domain/worktime"
	"github.com/stretchr/testify/assert"
)

func catalogOf(rows ...breakwindow.BreakWindow) breakwindow.Catalog {
	return breakwindow.NewCatalog(rows)
}

func activeWindow(name, start, end string) breakwindow.BreakWindow {
	return breakwindow.BreakWindow{Name: name, StartTime: start, EndTime: end, Active: true}
}

func TestDeductBreaks_LunchSubtracted(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("lunch", "12:00", "13:00"))

	minutes, overlaps := DeductBreaks(worktime.MergedInterval{Start: "09:00", End: "18:00"}, catalog)

	assert.Equal(t, 480, minutes)
	assert.Equal(t, []worktime.BreakOverlap{{Name: "lunch", Minutes: 60}}, overlaps)
}

func TestDeductBreaks_MorningBreakShiftsStart(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("morning", "06:00", "08:30"))

	// Work recorded before 06:00 is treated as overnight carryover: the
	// countable start snaps to 08:30 and the morning window is not
	// subtracted a second time.
	minutes, overlaps := DeductBreaks(worktime.MergedInterval{Start: "05:00", End: "17:00"}, catalog)

	assert.Equal(t, 510, minutes)
	assert.Empty(t, overlaps)
}

func TestDeductBreaks_MorningBreakSubtractedWhenNoShift(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("morning", "06:00", "08:30"))

	// Starting inside the window gets ordinary overlap subtraction, so
	// the figure is continuous across a 06:00 start.
	minutes, _ := DeductBreaks(worktime.MergedInterval{Start: "06:00", End: "17:00"}, catalog)

	assert.Equal(t, 510, minutes)
}

func TestDeductBreaks_MidnightRollover(t *testing.T) {
	t.Parallel()

	minutes, _ := DeductBreaks(worktime.MergedInterval{Start: "22:00", End: "02:00"}, catalogOf())
	assert.Equal(t, 240, minutes)

	catalog := catalogOf(activeWindow("late", "23:00", "23:30"))
	minutes, _ = DeductBreaks(worktime.MergedInterval{Start: "22:00", End: "02:00"}, catalog)
	assert.Equal(t, 210, minutes)
}

func TestDeductBreaks_MidnightRolloverCountsDayTwoBreak(t *testing.T) {
	t.Parallel()

	// The break recurs past midnight: its day-two occurrence overlaps
	// the tail of the overnight interval.
	catalog := catalogOf(activeWindow("night", "00:30", "01:00"))

	minutes, overlaps := DeductBreaks(worktime.MergedInterval{Start: "22:00", End: "02:00"}, catalog)

	assert.Equal(t, 210, minutes)
	assert.Equal(t, []worktime.BreakOverlap{{Name: "night", Minutes: 30}}, overlaps)
}

func TestDeductBreaks_NeverNegative(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("long", "00:00", "23:59"))

	minutes, _ := DeductBreaks(worktime.MergedInterval{Start: "12:00", End: "12:30"}, catalog)

	assert.Equal(t, 0, minutes)
}

func TestDeductBreaks_UnparseableIntervalCountsZero(t *testing.T) {
	t.Parallel()

	minutes, overlaps := DeductBreaks(worktime.MergedInterval{Start: "bad", End: "17:00"}, catalogOf())

	assert.Equal(t, 0, minutes)
	assert.Nil(t, overlaps)
}

func TestComputeWorkMinutes_SumsMergedIntervals(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("lunch", "12:00", "13:00"))
	sessions := []worktime.SessionWindow{
		{Start: "09:00", End: "12:00"},
		{Start: "12:01", End: "13:00"},
		{Start: "15:00", End: "17:00"},
	}

	// 09:00-13:00 minus the lunch hour, plus 15:00-17:00.
	assert.Equal(t, 300, ComputeWorkMinutes(sessions, catalog, 1))
}

func TestComputeWorkMinutes_NeverNegative(t *testing.T) {
	t.Parallel()

	catalog := catalogOf(activeWindow("all day", "00:00", "23:59"))
	sessions := []worktime.SessionWindow{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "09:00"}, // malformed ordering rolls over, still floored at zero
	}

	assert.GreaterOrEqual(t, ComputeWorkMinutes(sessions, catalog, 1), 0)
}
