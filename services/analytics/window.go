package analytics

import "time"

// TimeRange is the symbolic range selector accepted by the dashboard.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
	Range1Year  TimeRange = "1y"

	DefaultTimeRange = Range30Days
)

// ParseTimeRange maps a query token to a TimeRange. Unknown or empty tokens
// fall back to DefaultTimeRange rather than failing the request.
func ParseTimeRange(token string) TimeRange {
	switch TimeRange(token) {
	case Range7Days, Range30Days, Range90Days, Range1Year:
		return TimeRange(token)
	default:
		return DefaultTimeRange
	}
}

// Window is the current period [Start, Now) and the mirrored previous period [PreviousStart, Start).
type Window struct {
	Range         TimeRange
	Now           time.Time
	Start         time.Time
	PreviousStart time.Time
}

// ResolveWindow computes the current and previous windows for a range token.
// All instants are normalised to UTC.
func ResolveWindow(token string, now time.Time) Window {
	tr := ParseTimeRange(token)
	now = now.UTC()

	var start time.Time
	switch tr {
	case Range7Days:
		start = now.AddDate(0, 0, -7)
	case Range90Days:
		start = now.AddDate(0, 0, -90)
	case Range1Year:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now.AddDate(0, 0, -30)
	}

	return Window{
		Range:         tr,
		Now:           now,
		Start:         start,
		PreviousStart: start.Add(-now.Sub(start)),
	}
}

// Duration is the length shared by the current and previous periods.
func (w Window) Duration() time.Duration {
	return w.Now.Sub(w.Start)
}
