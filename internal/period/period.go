// Package period maps the dashboard's symbolic period tokens to concrete
// timestamp windows. It is the single source of truth for window semantics;
// every query path resolves its period through Resolve.
package period

import "time"

// Window is a [Start, End] filter over event timestamps. A nil bound means
// the window is open on that side. Both bounds are inclusive.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Recognized period tokens.
const (
	TokenToday       = "today"
	TokenYesterday   = "yesterday"
	TokenLast24Hours = "last24hours"
	TokenLast7Days   = "last7days"
	TokenLast30Days  = "last30days"
	TokenAll         = "all"
)

// Resolve evaluates a period token against now. Unrecognized tokens, "all"
// and the empty string resolve to an unbounded window (full history).
func Resolve(token string, now time.Time) Window {
	switch token {
	case TokenToday:
		return dayWindow(now)
	case TokenYesterday:
		return dayWindow(now.AddDate(0, 0, -1))
	case TokenLast24Hours:
		return sinceWindow(now.Add(-24 * time.Hour))
	case TokenLast7Days:
		return sinceWindow(now.Add(-7 * 24 * time.Hour))
	case TokenLast30Days:
		return sinceWindow(now.Add(-30 * 24 * time.Hour))
	default:
		return Window{}
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// IsUnbounded reports whether the window applies no filter at all.
func (w Window) IsUnbounded() bool {
	return w.Start == nil && w.End == nil
}

func dayWindow(t time.Time) Window {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
	return Window{Start: &start, End: &end}
}

func sinceWindow(start time.Time) Window {
	return Window{Start: &start}
}
