package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		input   string
		output  string
		icsPath string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the expansion pipeline on a cron schedule",
		Long: `Run one expansion immediately, then keep re-running it on the schedule
given by the config "refresh" field until interrupted. Useful when the
upstream export is refreshed periodically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			log := newLogger(cfg)
			p := newPipeline(log, cfg)

			runOnce := func() {
				if _, err := p.run(input, output, icsPath); err != nil {
					log.Error("scheduled expansion failed", err, "input", input)
				}
			}
			runOnce()

			c := cron.New()
			if _, err := c.AddFunc(cfg.RefreshCron, runOnce); err != nil {
				return fmt.Errorf("invalid refresh schedule %q: %w", cfg.RefreshCron, err)
			}
			c.Start()
			log.Info("watch mode started", "schedule", cfg.RefreshCron, "input", input)

			// Block until SIGINT/SIGTERM.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			go func() {
				sig := <-sigCh
				log.Info("signal received, shutting down", "signal", sig.String())
				cancel()
			}()

			<-ctx.Done()
			<-c.Stop().Done()
			log.Info("watch mode exiting")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the raw calendar payload")
	cmd.Flags().StringVarP(&output, "output", "o", "expanded_calendar.json", "Path for the expanded JSON output")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Optional path for an iCalendar export of the expanded events")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
