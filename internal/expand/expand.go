// Package expand materializes recurring master events into individually
// addressable instance records. Upstream connectors sometimes deliver a
// recurring series as a single master row; downstream views need one row
// per occurrence within the series' date window.
package expand

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/amascaro08/FloHub/internal/instant"
	"github.com/amascaro08/FloHub/internal/logger"
	"github.com/amascaro08/FloHub/internal/model"
)

const (
	// defaultMaxInstancesPerEvent caps expansion of a single master as a
	// safeguard against malformed or far-future recurrence end dates.
	defaultMaxInstancesPerEvent = 100

	// defaultOffset is appended to serialized instance timestamps when the
	// master's startTime carried no timezone literal.
	defaultOffset = "+00:00"
)

// Config controls how recurrence expansion is performed.
type Config struct {
	// MaxInstancesPerEvent is a safety cap per master. If zero,
	// defaultMaxInstancesPerEvent is used.
	MaxInstancesPerEvent int

	// DefaultOffset is the timezone literal used when a master's startTime
	// has none. If empty, "+00:00" is used.
	DefaultOffset string
}

func (c *Config) normalize() {
	if c.MaxInstancesPerEvent <= 0 {
		c.MaxInstancesPerEvent = defaultMaxInstancesPerEvent
	}
	if c.DefaultOffset == "" {
		c.DefaultOffset = defaultOffset
	}
}

// Result is the outcome of expanding one master event.
//
// Degraded marks the fail-soft path: something about the master prevented
// expansion and Instances holds the original record unchanged. Truncated
// marks masters whose series hit the instance cap.
type Result struct {
	Instances []model.Event
	Degraded  bool
	Truncated bool
}

// Expander materializes recurring events. It holds no mutable state; the
// same Expander may be reused across batches.
type Expander struct {
	log logger.Logger
	cfg Config
}

// New creates an Expander writing diagnostics to log.
func New(log logger.Logger, cfg Config) *Expander {
	if log == nil {
		log = logger.NoOp{}
	}
	cfg.normalize()
	return &Expander{log: log, cfg: cfg}
}

// Expand turns one master event into its ordered occurrence instances.
//
// Non-recurring events are returned unchanged. A purportedly recurring
// master that cannot be expanded (missing fields, unparseable dates, an
// empty series window) is passed through unchanged with Degraded set;
// expansion never fails the caller.
func (x *Expander) Expand(master model.Event) Result {
	pattern := ParsePattern(master.Recurrence())
	if pattern == PatternNone {
		return Result{Instances: []model.Event{master}}
	}

	startText := master.StartTime()
	endText := master.EndTime()
	untilText := master.RecurrenceEndDate()

	if startText == "" || endText == "" || untilText == "" {
		x.log.Warn("skipping master with missing required fields",
			"title", master.Title(),
			"pattern", pattern,
		)
		return Result{Instances: []model.Event{master}, Degraded: true}
	}

	start, err := instant.Parse(startText)
	if err != nil {
		return x.degrade(master, "unparseable startTime", err)
	}
	end, err := instant.Parse(endText)
	if err != nil {
		return x.degrade(master, "unparseable endTime", err)
	}
	until, err := instant.Parse(untilText)
	if err != nil {
		return x.degrade(master, "unparseable recurrenceEndDate", err)
	}

	// Duration is fixed across the whole series.
	duration := end.Time.Sub(start.Time)

	// A date-only recurrence end bounds the series inclusively: occurrences
	// on the end date itself still belong to the window.
	bound := until.Time
	if until.DateOnly {
		bound = endOfDay(bound)
	}

	times, truncated, ok := x.occurrenceTimes(pattern, start.Time, bound, master)
	if !ok {
		return Result{Instances: []model.Event{master}, Degraded: true}
	}
	if len(times) == 0 {
		x.log.Warn("recurrence window contains no occurrences",
			"title", master.Title(),
			"start", startText,
			"recurrence_end", untilText,
		)
		return Result{Instances: []model.Event{master}, Degraded: true}
	}

	ident := newIdentity(master)
	tz := start.OffsetOr(x.cfg.DefaultOffset)

	instances := make([]model.Event, 0, len(times))
	for _, occStart := range times {
		occEnd := occStart.Add(duration)
		instances = append(instances, master.WithOverlay(model.InstanceOverlay{
			StartTime:         instant.Canonical(occStart) + tz,
			EndTime:           instant.Canonical(occEnd) + tz,
			UID:               ident.instanceUID(occStart),
			RecurringMasterID: ident.masterID,
		}))
	}

	if truncated {
		x.log.Warn("instance cap reached, series truncated",
			"title", master.Title(),
			"cap", x.cfg.MaxInstancesPerEvent,
		)
	}
	x.log.Info("generated instances for master",
		"title", master.Title(),
		"pattern", pattern,
		"count", len(instances),
	)

	return Result{Instances: instances, Truncated: truncated}
}

// occurrenceTimes computes the ordered occurrence start times for a
// master, capped at MaxInstancesPerEvent. The third return value is false
// when the recurrence rule itself could not be evaluated.
func (x *Expander) occurrenceTimes(pattern Pattern, start, bound time.Time, master model.Event) ([]time.Time, bool, bool) {
	if pattern == PatternUnknown {
		// The first occurrence is always the master's own start; it is kept,
		// and the rest of the series is abandoned.
		x.log.Warn("unknown recurrence pattern, halting expansion",
			"title", master.Title(),
			"recurrence", master.Recurrence(),
		)
		if start.After(bound) {
			return nil, false, true
		}
		return []time.Time{start}, false, true
	}

	freq, _ := pattern.frequency()
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: start,
		Until:   bound,
	})
	if err != nil {
		x.log.Error("building recurrence rule failed", err,
			"title", master.Title(),
			"pattern", pattern,
		)
		return nil, false, false
	}

	times := make([]time.Time, 0, x.cfg.MaxInstancesPerEvent)
	next := rule.Iterator()
	for len(times) < x.cfg.MaxInstancesPerEvent {
		t, ok := next()
		if !ok {
			return times, false, true
		}
		times = append(times, t)
	}

	// One more occurrence existing past the cap means the series was cut.
	_, more := next()
	return times, more, true
}

func (x *Expander) degrade(master model.Event, reason string, err error) Result {
	x.log.Warn("passing master through unexpanded",
		"title", master.Title(),
		"reason", reason,
		"err", err,
	)
	return Result{Instances: []model.Event{master}, Degraded: true}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
