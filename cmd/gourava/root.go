// Root command for the gourava CLI.
package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gourava/gourava/internal/paths"
	"github.com/gourava/gourava/pkg/gourava"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// logger is the process-wide logger, built in PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "gourava",
	Short: "Gourava is a local item-grading logbook",
	Long: `Gourava logs items you want to grade, each with free-form tags and
named criteria rated 0-5, plus reusable templates that pre-fill tags and
criteria for common categories.`,
	Version:      gourava.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogger(); err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// initLogger builds the process logger. Debug level under --verbose,
// info otherwise; output goes to stderr so command output stays clean.
func initLogger() error {
	config := zap.NewProductionConfig()
	if flagVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := config.Build()
	if err != nil {
		return err
	}
	logger = log
	return nil
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > GOURAVA_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence
// flag > config.yaml data_dir > GOURAVA_DATA_DIR env > platform default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
