package model

// Field keys recognized on an event record. Everything else is opaque
// passthrough data that must survive expansion untouched.
const (
	FieldTitle               = "title"
	FieldStartTime           = "startTime"
	FieldEndTime             = "endTime"
	FieldRecurrence          = "recurrence"
	FieldRecurrenceEndDate   = "recurrenceEndDate"
	FieldUID                 = "uid"
	FieldIsRecurringInstance = "isRecurringInstance"
	FieldRecurringMasterID   = "recurringMasterId"
)

// Event is a flat calendar event record: a string-keyed mapping as it
// arrives from the upstream connector. Known fields have accessors below;
// unknown fields ride along unmodified.
type Event map[string]any

// stringField returns the named field as a string, or "" when the field
// is absent or not textual.
func (e Event) stringField(key string) string {
	if e == nil {
		return ""
	}
	s, _ := e[key].(string)
	return s
}

func (e Event) Title() string             { return e.stringField(FieldTitle) }
func (e Event) StartTime() string         { return e.stringField(FieldStartTime) }
func (e Event) EndTime() string           { return e.stringField(FieldEndTime) }
func (e Event) Recurrence() string        { return e.stringField(FieldRecurrence) }
func (e Event) RecurrenceEndDate() string { return e.stringField(FieldRecurrenceEndDate) }
func (e Event) UID() string               { return e.stringField(FieldUID) }

// IsRecurringInstance reports whether this record is a materialized
// occurrence rather than a master or single event.
func (e Event) IsRecurringInstance() bool {
	if e == nil {
		return false
	}
	b, ok := e[FieldIsRecurringInstance].(bool)
	return ok && b
}

// InstanceOverlay holds the fields a materialized occurrence overrides
// on its master. Everything else is copied verbatim.
type InstanceOverlay struct {
	StartTime         string
	EndTime           string
	UID               string
	RecurringMasterID string
}

// WithOverlay returns a fresh copy of the master with the overlay fields
// replaced and the record marked as a recurring instance. The master is
// never aliased or mutated.
func (e Event) WithOverlay(o InstanceOverlay) Event {
	inst := make(Event, len(e)+2)
	for k, v := range e {
		inst[k] = v
	}
	inst[FieldStartTime] = o.StartTime
	inst[FieldEndTime] = o.EndTime
	inst[FieldUID] = o.UID
	inst[FieldIsRecurringInstance] = true
	inst[FieldRecurringMasterID] = o.RecurringMasterID
	return inst
}
