// Package analytics aggregates card clicks for the analytics view.
// Everything here is pure: callers pass the clicks and the current time.
package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Window is a trailing time range in whole days. AllTime disables filtering.
type Window int

const (
	AllTime Window = 0
	Last7   Window = 7
	Last14  Window = 14
	Last30  Window = 30
	Last60  Window = 60
	Last90  Window = 90
)

// DefaultWindow is used when a request does not name one.
const DefaultWindow = Last30

var supportedWindows = []Window{Last7, Last14, Last30, Last60, Last90, AllTime}

// ErrUnsupportedWindow is returned for ranges outside the supported set.
var ErrUnsupportedWindow = errors.New("unsupported analytics window")

// ParseWindow accepts "all", a day count ("30") or a day count with a
// trailing "d" ("30d"). An empty string yields DefaultWindow.
func ParseWindow(raw string) (Window, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		return DefaultWindow, nil
	case "all", "all_time", "alltime":
		return AllTime, nil
	}

	days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
	if err != nil {
		return 0, errors.Wrapf(ErrUnsupportedWindow, "%q", raw)
	}

	for _, w := range supportedWindows {
		if w != AllTime && int(w) == days {
			return w, nil
		}
	}

	return 0, errors.Wrapf(ErrUnsupportedWindow, "%d days", days)
}

// Days returns the window length, zero for AllTime.
func (w Window) Days() int {
	return int(w)
}

// String renders the window the way ParseWindow accepts it.
func (w Window) String() string {
	if w == AllTime {
		return "all"
	}

	return strconv.Itoa(int(w)) + "d"
}

// Start returns the inclusive lower bound of the window relative to now.
// The second result is false for AllTime.
func (w Window) Start(now time.Time) (time.Time, bool) {
	if w == AllTime {
		return time.Time{}, false
	}

	return now.Add(-time.Duration(w) * 24 * time.Hour), true
}
