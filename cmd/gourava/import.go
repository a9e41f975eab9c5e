// Import command: load items and templates from an export document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import items and templates from a JSON export",
	Long: `Import reads a JSON document produced by export and inserts its items
and templates with fresh ids. A document that fails to parse aborts the
import; individual criterion entries with a missing name or rating are
skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(cmd.Context(), data); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Println("Import complete")
	return nil
}
