package analytics

import (
	"time"

	"loopcard/internal/domain/entity"
)

// Summary is the analytics view of one card over one window.
type Summary struct {
	Window   string      `json:"window"`
	Total    int         `json:"total"`
	ByType   []TypeCount `json:"by_type,omitempty"`
	ByDay    []DayCount  `json:"by_day,omitempty"`
	Advanced bool        `json:"advanced"`
}

// Summarize filters clicks once against now and aggregates the result.
// Breakdowns are only computed when advanced is true.
func Summarize(clicks []*entity.Click, window Window, now time.Time, loc *time.Location, advanced bool) Summary {
	filtered := FilterByWindow(clicks, window, now)

	summary := Summary{
		Window:   window.String(),
		Total:    len(filtered),
		Advanced: advanced,
	}
	if advanced {
		summary.ByType = CountsByType(filtered)
		summary.ByDay = CountsByDay(filtered, loc)
	}

	return summary
}
