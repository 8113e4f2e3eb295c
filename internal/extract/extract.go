// Package extract locates the calendar event array inside a raw source
// payload. Upstream exports deliver either the JSON array itself or an
// HTML page with the array embedded somewhere in the markup.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Markers used to locate an embedded event array. The boundary marker is
// the literal seam between two serialized event objects; the array-start
// marker is the head of the array containing them.
const (
	boundaryMarker   = `},{"title":`
	arrayStartMarker = `[{"title":`
)

// ExtractionError indicates that no event array could be located in the
// payload.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extract: " + e.Reason
}

// Events parses the event array out of a raw payload.
//
// A payload whose trimmed text opens with '[' is decoded directly.
// Anything else is treated as markup with the array embedded: the first
// seam between two event objects anchors a backward scan for the array
// head, and a forward scan balances the array delimiters to find its
// end. Numbers are decoded as json.Number so passthrough fields survive
// re-serialization unchanged.
func Events(rawText string) ([]any, error) {
	trimmed := strings.TrimSpace(rawText)
	if strings.HasPrefix(trimmed, "[") {
		return decodeArray(trimmed)
	}

	seam := strings.Index(rawText, boundaryMarker)
	if seam < 0 {
		return nil, &ExtractionError{Reason: "no event array found in payload"}
	}

	// The array head lies at or before the first seam. The search window
	// extends just past the seam so a two-element array whose head overlaps
	// the seam region is still found.
	window := rawText[:min(seam+len(arrayStartMarker), len(rawText))]
	start := strings.LastIndex(window, arrayStartMarker)
	if start < 0 {
		return nil, &ExtractionError{Reason: "no array-start marker before event boundary"}
	}

	slice, ok := balanceArray(rawText[start:])
	if !ok {
		return nil, &ExtractionError{Reason: "unbalanced array delimiters in payload"}
	}

	return decodeArray(slice)
}

// balanceArray walks forward from an opening '[' tracking nesting depth
// and returns the substring up to the matching close. Delimiters inside
// string values are not interpreted; event payloads do not contain
// bracket characters in field values.
func balanceArray(s string) (string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

func decodeArray(s string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var events []any
	if err := dec.Decode(&events); err != nil {
		return nil, fmt.Errorf("extract: decoding event array: %w", err)
	}
	return events, nil
}
