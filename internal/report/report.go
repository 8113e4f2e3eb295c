// Package report implements the per-date view of an expanded event
// collection: which records fall on a given day, and whether each is a
// materialized recurring instance or a single event.
package report

import (
	"fmt"
	"io"

	"github.com/amascaro08/FloHub/internal/model"
)

const maxTitleWidth = 50

// FilterByDate selects events whose startTime begins with the given
// YYYY-MM-DD prefix. The comparison is purely textual; records with
// absent or malformed start times never match.
func FilterByDate(events []model.Event, date string) []model.Event {
	filtered := make([]model.Event, 0)
	for _, ev := range events {
		start := ev.StartTime()
		if date != "" && len(start) >= len(date) && start[:len(date)] == date {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// Write prints a human-readable summary of the events on the given date.
func Write(w io.Writer, date string, events []model.Event) {
	matched := FilterByDate(events, date)

	fmt.Fprintf(w, "Events on %s: %d\n", date, len(matched))
	for i, ev := range matched {
		title := ev.Title()
		if title == "" {
			title = "No title"
		}
		if len(title) > maxTitleWidth {
			title = title[:maxTitleWidth]
		}

		kind := "Single Event"
		if ev.IsRecurringInstance() {
			kind = "Recurring Instance"
		}

		fmt.Fprintf(w, "%2d. %s\n", i+1, title)
		fmt.Fprintf(w, "    Time: %s\n", ev.StartTime())
		fmt.Fprintf(w, "    Type: %s\n", kind)
	}
}
