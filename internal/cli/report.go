package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amascaro08/FloHub/internal/extract"
	"github.com/amascaro08/FloHub/internal/model"
	"github.com/amascaro08/FloHub/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		input string
		dates []string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the events falling on given dates",
		Long: `Read a calendar payload (typically the output of "expand") and print,
for each requested date, the events whose startTime falls on that day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if len(dates) == 0 {
				dates = cfg.ReportDates
			}
			if len(dates) == 0 {
				return errors.New("no report dates given; use --date")
			}

			raw, err := os.ReadFile(input)
			if err != nil {
				return err
			}
			rawEvents, err := extract.Events(string(raw))
			if err != nil {
				return err
			}

			events := make([]model.Event, 0, len(rawEvents))
			for _, item := range rawEvents {
				if rec, ok := item.(map[string]any); ok && rec != nil {
					events = append(events, model.Event(rec))
				}
			}

			for _, d := range dates {
				report.Write(cmd.OutOrStdout(), d, events)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the calendar payload to report on")
	cmd.Flags().StringArrayVar(&dates, "date", nil, "YYYY-MM-DD date(s) to report on (repeatable)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
