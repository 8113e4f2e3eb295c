package expand

import (
	"strings"

	"github.com/teambition/rrule-go"
)

// Pattern is the repetition rule attached to a master event.
type Pattern int

const (
	PatternNone Pattern = iota
	PatternDaily
	PatternWeekly
	PatternMonthly
	PatternYearly
	PatternUnknown
)

// ParsePattern reads a recurrence field case-insensitively. An absent
// value means the event does not recur.
func ParsePattern(s string) Pattern {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PatternNone
	case "daily":
		return PatternDaily
	case "weekly":
		return PatternWeekly
	case "monthly":
		return PatternMonthly
	case "yearly":
		return PatternYearly
	default:
		return PatternUnknown
	}
}

func (p Pattern) String() string {
	switch p {
	case PatternNone:
		return "none"
	case PatternDaily:
		return "daily"
	case PatternWeekly:
		return "weekly"
	case PatternMonthly:
		return "monthly"
	case PatternYearly:
		return "yearly"
	default:
		return "unknown"
	}
}

// frequency maps a known recurring pattern onto its RRULE frequency.
func (p Pattern) frequency() (rrule.Frequency, bool) {
	switch p {
	case PatternDaily:
		return rrule.DAILY, true
	case PatternWeekly:
		return rrule.WEEKLY, true
	case PatternMonthly:
		return rrule.MONTHLY, true
	case PatternYearly:
		return rrule.YEARLY, true
	default:
		return 0, false
	}
}
