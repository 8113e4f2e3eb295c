package cli

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/amascaro08/FloHub/internal/config"
	"github.com/amascaro08/FloHub/internal/expand"
	"github.com/amascaro08/FloHub/internal/export"
	"github.com/amascaro08/FloHub/internal/extract"
	"github.com/amascaro08/FloHub/internal/logger"
	"github.com/amascaro08/FloHub/internal/model"
	"github.com/amascaro08/FloHub/internal/task"
)

// pipeline wires the extraction and expansion core to the file harness.
type pipeline struct {
	log      logger.Logger
	cfg      *config.Config
	runner   *task.Runner
	expander *expand.Expander
}

func newPipeline(log logger.Logger, cfg *config.Config) *pipeline {
	return &pipeline{
		log:    log,
		cfg:    cfg,
		runner: task.NewRunner(log),
		expander: expand.New(log, expand.Config{
			MaxInstancesPerEvent: cfg.MaxInstances,
			DefaultOffset:        cfg.DefaultOffset,
		}),
	}
}

// run executes one full expansion: read input, extract the event array,
// expand recurring masters, write pretty-printed JSON to outputPath and,
// when icsPath is set, an iCalendar export. The expanded collection is
// returned for reporting.
func (p *pipeline) run(inputPath, outputPath, icsPath string) ([]model.Event, error) {
	var rawText []byte
	if err := p.runner.Run("read-input", func() error {
		b, err := os.ReadFile(inputPath)
		rawText = b
		return err
	}); err != nil {
		return nil, err
	}

	var rawEvents []any
	if err := p.runner.Run("extract", func() error {
		events, err := extract.Events(string(rawText))
		rawEvents = events
		return err
	}); err != nil {
		return nil, err
	}

	result := p.expander.ExpandAll(rawEvents)

	if outputPath != "" {
		if err := p.runner.Run("write-output", func() error {
			return writeJSON(outputPath, result.Events, p.cfg.Indent)
		}); err != nil {
			return nil, err
		}
		p.log.Info("expanded calendar written", "path", outputPath, "event_count", len(result.Events))
	}

	if icsPath != "" {
		if err := p.runner.Run("export-ics", func() error {
			return export.WriteICS(p.log, result.Events, icsPath)
		}); err != nil {
			return nil, err
		}
		p.log.Info("ics export written", "path", icsPath)
	}

	return result.Events, nil
}

func writeJSON(path string, events []model.Event, indent int) error {
	data, err := json.MarshalIndent(events, "", strings.Repeat(" ", indent))
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
