package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbarros/oxossi/internal/app"
	"github.com/mbarros/oxossi/internal/config"
	"github.com/mbarros/oxossi/internal/logging"
)

var (
	flagConfig   string
	flagLogLevel string
	flagOutput   string
)

var rootCmd = &cobra.Command{
	Use:   "oxossi",
	Short: "oxossi — historical document analysis for colonial Brazil",
	Long: "Scans TXT/CSV/PDF documents for colonial place mentions (attributed to\n" +
		"captaincies), date phrases, personal names, theme keywords and\n" +
		"bibliographic references. Results are emitted as a JSON envelope.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// newEngine resolves configuration and builds the engine plus its logger.
// The caller owns both: defer eng.Close() and log.Sync().
func newEngine() (*app.Engine, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log, err := logging.New(level)
	if err != nil {
		return nil, nil, err
	}
	return app.New(cfg, log), log, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to oxossi.yaml (default: ./oxossi.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "also write the JSON envelope to this file")

	rootCmd.AddCommand(placesCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(referencesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}
