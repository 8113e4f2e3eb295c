package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amascaro08/FloHub/internal/config"
	"github.com/amascaro08/FloHub/internal/logger"
)

// rootCmd represents the base command for the calexpand application
var rootCmd = &cobra.Command{
	Use:   "calexpand",
	Short: "Expands master recurring calendar events into individual instances",
	Long: `calexpand takes a flat JSON collection of calendar event records in which
recurring events appear only as a single master row, and materializes every
occurrence of each series as an independently addressable record.

The input may be the JSON array itself or an HTML page with the array
embedded in the markup.`,
	SilenceUsage: true,
}

var (
	configPath string
	logLevel   string
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calexpand version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Minimum log level: debug, info, warn, error")

	rootCmd.AddCommand(newExpandCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newReportCmd())
}

// loadConfig resolves the effective configuration: file values when
// --config is given, defaults otherwise.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configPath)
}

// newLogger builds the logger every component receives. The --log-level
// flag overrides the config file value.
func newLogger(cfg *config.Config) logger.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	return logger.New(logger.ParseLevel(level))
}
