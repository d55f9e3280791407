package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/planetarian/qonqr/config"
	"github.com/planetarian/qonqr/qonqr"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *qonqr.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qonqr",
	Short: "Query the Qonqr zones API from the command line",
	Long: `qonqr is a CLI for the Qonqr public zones API. It can look up the
status of individual zones, list zones inside a bounding box or grid cell,
and resolve coordinates to grid references.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: teardownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion sets the version information displayed by --version
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(zoneCmd)
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(gridCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create the zones API client
	client, err = qonqr.NewClient(cfg.Qonqr.APIKey, cfg.Qonqr.APISecret, logger,
		qonqr.WithBaseURL(cfg.Qonqr.BaseURL))
	if err != nil {
		return fmt.Errorf("failed to create zones client: %w", err)
	}

	return nil
}

// teardownApp releases the API client
func teardownApp(cmd *cobra.Command, args []string) {
	if client != nil {
		client.Close()
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
