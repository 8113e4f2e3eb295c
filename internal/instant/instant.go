// Package instant normalizes the heterogeneous date/time strings found in
// upstream calendar payloads into a comparable point in time. Timezone
// offsets are never interpreted or converted; the original literal is
// stripped before matching and carried alongside for re-attachment at
// serialization time.
package instant

import (
	"strings"
	"time"
)

// Layouts accepted by Parse, tried in priority order.
const (
	layoutDateTime = "2006-01-02T15:04:05"
	layoutDate     = "2006-01-02"
	layoutMicros   = "2006-01-02T15:04:05.999999"
)

// DateKeyLayout renders a date as a compact YYYYMMDD key, used for
// per-occurrence identifiers.
const DateKeyLayout = "20060102"

var layouts = []string{layoutDateTime, layoutDate, layoutMicros}

// Instant is a parsed, timezone-agnostic point in time. Offset holds the
// literal suffix that was stripped from the input ("+10:00", "Z", or ""
// when the input carried none). DateOnly marks inputs that contained no
// clock component.
type Instant struct {
	Time     time.Time
	Offset   string
	DateOnly bool
}

// ParseError indicates that no accepted format matched the input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return "instant: unable to parse datetime: " + e.Input
}

// Parse normalizes a date/time string into an Instant.
//
// An empty input returns (nil, nil): absence of the field is not a parse
// failure, and callers must handle it separately. A non-empty input that
// matches no accepted layout returns a *ParseError.
func Parse(text string) (*Instant, error) {
	if text == "" {
		return nil, nil
	}

	value, offset := splitOffset(text)

	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return &Instant{
			Time:     t,
			Offset:   offset,
			DateOnly: layout == layoutDate,
		}, nil
	}

	return nil, &ParseError{Input: text}
}

// splitOffset detaches a trailing timezone literal. A "+HH:MM" style
// suffix begins at the first '+' in the string; a bare "Z" suffix is the
// UTC designator. The detached literal is preserved verbatim.
func splitOffset(s string) (value, offset string) {
	if i := strings.IndexByte(s, '+'); i >= 0 {
		return s[:i], s[i:]
	}
	if strings.HasSuffix(s, "Z") {
		return strings.TrimSuffix(s, "Z"), "Z"
	}
	return s, ""
}

// Canonical renders a time in the canonical wire form, without any
// timezone literal.
func Canonical(t time.Time) string {
	return t.Format(layoutDateTime)
}

// Canonical renders the instant in the canonical wire form.
func (i *Instant) Canonical() string {
	return Canonical(i.Time)
}

// DateKey renders the instant's date as a compact YYYYMMDD key.
func (i *Instant) DateKey() string {
	return i.Time.Format(DateKeyLayout)
}

// OffsetOr returns the captured offset literal, or def when the input
// carried none.
func (i *Instant) OffsetOr(def string) string {
	if i.Offset == "" {
		return def
	}
	return i.Offset
}
