package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amascaro08/FloHub/internal/config"
	"github.com/amascaro08/FloHub/internal/extract"
	"github.com/amascaro08/FloHub/internal/logger"
	"github.com/amascaro08/FloHub/internal/task"
)

const samplePayload = `[
  {"title":"One-off","startTime":"2025-07-02T10:00:00Z","endTime":"2025-07-02T11:00:00Z"},
  {"title":"Daily Sync","startTime":"2025-07-01T09:00:00Z","endTime":"2025-07-01T09:15:00Z","recurrence":"daily","recurrenceEndDate":"2025-07-03","uid":"sync-1"}
]`

func TestPipelineRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "calendar.json")
	output := filepath.Join(dir, "expanded.json")
	require.NoError(t, os.WriteFile(input, []byte(samplePayload), 0o644))

	p := newPipeline(logger.NoOp{}, config.DefaultConfig())
	events, err := p.run(input, output, "")
	require.NoError(t, err)
	require.Len(t, events, 4)

	// Output is valid pretty-printed JSON holding the same collection.
	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var written []map[string]any
	require.NoError(t, json.Unmarshal(data, &written))
	require.Len(t, written, 4)
	assert.Equal(t, "One-off", written[0]["title"])
	assert.Equal(t, "sync-1_20250701", written[1]["uid"])
	assert.Equal(t, true, written[1]["isRecurringInstance"])
}

func TestPipelineRunEmbeddedPayload(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.html")
	output := filepath.Join(dir, "expanded.json")

	page := `<html><body>` +
		`[{"title":"A","startTime":"2025-07-01T09:00:00Z","endTime":"2025-07-01T10:00:00Z"},` +
		`{"title":"B","startTime":"2025-07-02T09:00:00Z","endTime":"2025-07-02T10:00:00Z"}]` +
		`</body></html>`
	require.NoError(t, os.WriteFile(input, []byte(page), 0o644))

	p := newPipeline(logger.NoOp{}, config.DefaultConfig())
	events, err := p.run(input, output, "")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPipelineRunMissingInput(t *testing.T) {
	p := newPipeline(logger.NoOp{}, config.DefaultConfig())

	_, err := p.run(filepath.Join(t.TempDir(), "missing.json"), "", "")
	require.Error(t, err)

	var serr *task.StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "read-input", serr.Stage)
}

func TestPipelineRunExtractionFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "noise.html")
	require.NoError(t, os.WriteFile(input, []byte("<html>no data</html>"), 0o644))

	p := newPipeline(logger.NoOp{}, config.DefaultConfig())
	_, err := p.run(input, "", "")
	require.Error(t, err)

	var serr *task.StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "extract", serr.Stage)

	var xerr *extract.ExtractionError
	assert.ErrorAs(t, err, &xerr)
}

func TestPipelineICSExport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "calendar.json")
	icsPath := filepath.Join(dir, "calendar.ics")
	require.NoError(t, os.WriteFile(input, []byte(samplePayload), 0o644))

	p := newPipeline(logger.NoOp{}, config.DefaultConfig())
	_, err := p.run(input, "", icsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "BEGIN:VCALENDAR")
	assert.Contains(t, string(data), "SUMMARY:Daily Sync")
}
