// Package export renders an expanded event collection as an iCalendar
// document, giving downstream calendar clients a subscribable view of
// the materialized instances.
package export

import (
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/amascaro08/FloHub/internal/instant"
	"github.com/amascaro08/FloHub/internal/logger"
	"github.com/amascaro08/FloHub/internal/model"
)

// ICS serializes events into an iCalendar payload. Events whose times
// cannot be parsed are skipped with a warning; the export is a view, not
// a validator.
func ICS(log logger.Logger, events []model.Event) string {
	if log == nil {
		log = logger.NoOp{}
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for _, ev := range events {
		start, err := instant.Parse(ev.StartTime())
		if err != nil || start == nil {
			log.Warn("skipping event without usable startTime in ICS export",
				"title", ev.Title(),
				"err", err,
			)
			continue
		}
		end, err := instant.Parse(ev.EndTime())
		if err != nil || end == nil {
			// Fall back to a zero-length occurrence.
			end = start
		}

		uid := ev.UID()
		if uid == "" {
			uid = ev.Title() + "_" + start.DateKey()
		}

		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start.Time)
		ve.SetEndAt(end.Time)
		ve.SetSummary(ev.Title())
	}

	return cal.Serialize()
}

// WriteICS renders events and writes the document to path.
func WriteICS(log logger.Logger, events []model.Event, path string) error {
	return os.WriteFile(path, []byte(ICS(log, events)), 0o644)
}
