package analytics

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"loopcard/internal/domain/entity"
)

const dayLayout = "2006-01-02"

// TypeCount is the number of clicks of one type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DayCount is the number of clicks on one calendar day.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD in the viewer's location.
	Count int    `json:"count"`
}

// FilterByWindow keeps the clicks created at or after now minus the window.
// AllTime returns the input unchanged. Order is preserved.
func FilterByWindow(clicks []*entity.Click, window Window, now time.Time) []*entity.Click {
	start, bounded := window.Start(now)
	if !bounded {
		return clicks
	}

	kept := make([]*entity.Click, 0, len(clicks))
	for _, click := range clicks {
		if !click.CreatedAt.Before(start) {
			kept = append(kept, click)
		}
	}

	return kept
}

// CountsByType groups clicks by case-insensitive type. Display names have
// their first letter upper-cased. Results are ordered by count descending,
// ties by first appearance in clicks.
func CountsByType(clicks []*entity.Click) []TypeCount {
	index := make(map[string]int)
	counts := make([]TypeCount, 0)

	for _, click := range clicks {
		key := strings.ToLower(click.Type)
		if i, ok := index[key]; ok {
			counts[i].Count++

			continue
		}
		index[key] = len(counts)
		counts = append(counts, TypeCount{Type: displayName(key), Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

// CountsByDay groups clicks by calendar day in loc, ascending. Days without
// clicks are not emitted. A nil loc means UTC.
func CountsByDay(clicks []*entity.Click, loc *time.Location) []DayCount {
	if loc == nil {
		loc = time.UTC
	}

	byDay := make(map[string]int)
	for _, click := range clicks {
		byDay[click.CreatedAt.In(loc).Format(dayLayout)]++
	}

	days := make([]DayCount, 0, len(byDay))
	for day, count := range byDay {
		days = append(days, DayCount{Date: day, Count: count})
	}

	// The fixed-width layout sorts chronologically as a string.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

func displayName(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}

	return string(unicode.ToUpper(r)) + key[size:]
}
