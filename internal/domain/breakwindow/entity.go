package breakwindow

import (
	"time"

	"github.com/garageworks/workshop-backend-go/internal/pkg/timeofday"
)

// Morning break boundaries in minutes since midnight. Only a window
// matching these exactly is treated as the morning break; an "early
// window" heuristic would misfire on admin-configured variants.
const (
	MorningBreakStartMin = 6 * 60
	MorningBreakEndMin   = 8*60 + 30
)

type BreakWindow struct {
	ID        string
	Name      string
	StartTime string // wall-clock "HH:MM"
	EndTime   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window is one active break window with its times already parsed.
type Window struct {
	Name     string
	StartMin int
	EndMin   int
}

// IsMorningBreak reports whether this window is exactly the 06:00-08:30
// morning break, which is handled by the start-shift policy instead of
// ordinary overlap subtraction.
func (w Window) IsMorningBreak() bool {
	return w.StartMin == MorningBreakStartMin && w.EndMin == MorningBreakEndMin
}

// Catalog is a read-only snapshot of the active break windows, taken
// fresh per evaluation so admin edits apply on the next run.
type Catalog struct {
	windows []Window
}

// NewCatalog builds a snapshot from configured rows. Inactive rows and
// rows with unparseable times contribute nothing.
func NewCatalog(rows []BreakWindow) Catalog {
	windows := make([]Window, 0, len(rows))
	for _, row := range rows {
		if !row.Active {
			continue
		}
		start, ok := timeofday.Parse(row.StartTime)
		if !ok {
			continue
		}
		end, ok := timeofday.Parse(row.EndTime)
		if !ok {
			continue
		}
		windows = append(windows, Window{Name: row.Name, StartMin: start, EndMin: end})
	}
	return Catalog{windows: windows}
}

// Windows returns the active windows. Order carries no meaning; overlap
// accumulation is order-independent.
func (c Catalog) Windows() []Window {
	return c.windows
}

// MorningBreak returns the active morning break window, if one is
// configured.
func (c Catalog) MorningBreak() (Window, bool) {
	for _, w := range c.windows {
		if w.IsMorningBreak() {
			return w, true
		}
	}
	return Window{}, false
}
