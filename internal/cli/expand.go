package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amascaro08/FloHub/internal/report"
)

func newExpandCmd() *cobra.Command {
	var (
		input   string
		output  string
		icsPath string
		dates   []string
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand recurring masters in a calendar payload and write the result",
		Long: `Read a raw calendar payload (a JSON event array, or an HTML page with
the array embedded), materialize every recurring master into individual
instance records, and write the expanded collection as pretty-printed JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log := newLogger(cfg)

			events, err := newPipeline(log, cfg).run(input, output, icsPath)
			if err != nil {
				return err
			}

			for _, d := range cfg.ReportDates {
				report.Write(cmd.OutOrStdout(), d, events)
			}
			for _, d := range dates {
				report.Write(cmd.OutOrStdout(), d, events)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the raw calendar payload")
	cmd.Flags().StringVarP(&output, "output", "o", "expanded_calendar.json", "Path for the expanded JSON output")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Optional path for an iCalendar export of the expanded events")
	cmd.Flags().StringArrayVar(&dates, "date", nil, "YYYY-MM-DD date(s) to report on after expansion (repeatable)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
