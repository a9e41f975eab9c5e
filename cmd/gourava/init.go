// Init command: create config and data directories, initialize the schema,
// and seed the built-in templates.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gourava/gourava/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gourava storage",
	Long: `Create the configuration and data directories, initialize the database
schema, and seed the built-in templates (Pizza, Movie, Clothes) if this is
the first launch.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	// Record an explicit --data-dir in config.yaml so later invocations
	// find the same database without the flag.
	if flagDataDir != "" {
		if err := writeConfigWithDataDir(configDir, flagDataDir); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		configDataDir = flagDataDir
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Seed(cmd.Context()); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Println("Gourava initialized successfully")
	fmt.Println("  config:", configDir)
	fmt.Println("  data:  ", dataDir)
	return nil
}

// writeConfigWithDataDir writes config.yaml carrying the given data_dir,
// replacing any existing file.
func writeConfigWithDataDir(configDir, dataDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	cfg := configFile{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, configFileExt), data, 0o644)
}
