package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kinetic/config"
	"kinetic/logging"
)

var (
	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "kinetic",
	Short: "Kinetic typography layout for word-timed transcripts",
	Long: `Kinetic turns word-level transcript timings into word-cloud screens.
Words are grouped into screens, sized by importance and packed into centered
rows. Screens can be written as JSON, exported as Final Cut Pro titles or
served over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")

	var err error
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Log.Pretty, _ = cmd.Flags().GetBool("pretty")
	}
	logger = logging.New(cfg.Log.Level, cfg.Log.Pretty)
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file (defaults to $CONFIG_PATH or ./kinetic.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Human-readable log output")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(vttCmd)
	rootCmd.AddCommand(fcpxmlCmd)
	rootCmd.AddCommand(serveCmd)
}
