package expand

import "github.com/amascaro08/FloHub/internal/model"

// BatchResult summarizes one ExpandAll run.
type BatchResult struct {
	Events []model.Event

	InputCount     int
	RecurringCount int
	DegradedCount  int
}

// ExpandAll applies Expand across a raw event collection as decoded from
// the source payload. Null and non-record entries are skipped; events
// without a recurrence rule pass through unchanged; each recurring
// master's instances land contiguously, in chronological order, at the
// master's position. A failed expansion degrades that master only and
// never aborts the batch.
func (x *Expander) ExpandAll(raw []any) BatchResult {
	res := BatchResult{
		Events:     make([]model.Event, 0, len(raw)),
		InputCount: len(raw),
	}

	x.log.Info("processing calendar events", "input_count", len(raw))

	for _, item := range raw {
		rec, ok := item.(map[string]any)
		if !ok || rec == nil {
			continue
		}
		ev := model.Event(rec)

		if ParsePattern(ev.Recurrence()) == PatternNone {
			res.Events = append(res.Events, ev)
			continue
		}

		res.RecurringCount++
		out := x.Expand(ev)
		if out.Degraded {
			res.DegradedCount++
		}
		res.Events = append(res.Events, out.Instances...)
	}

	x.log.Info("expansion completed",
		"recurring_masters", res.RecurringCount,
		"degraded", res.DegradedCount,
		"output_count", len(res.Events),
	)

	return res
}
