// Export command: serialize items and/or templates to JSON.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportItemsOnly     bool
	exportTemplatesOnly bool
	exportOut           string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export items and templates as JSON",
	Long: `Export writes a JSON document containing all items and templates.
With --items or --templates only that set is exported. The output is valid
input for the import command.

Example:
  gourava export --out backup.json
  gourava export --templates`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportItemsOnly, "items", false, "export items only")
	exportCmd.Flags().BoolVar(&exportTemplatesOnly, "templates", false, "export templates only")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
	exportCmd.MarkFlagsMutuallyExclusive("items", "templates")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var exporter func(context.Context) ([]byte, error)
	switch {
	case exportItemsOnly:
		exporter = store.ExportItems
	case exportTemplatesOnly:
		exporter = store.ExportTemplates
	default:
		exporter = store.ExportAll
	}

	data, err := exporter(cmd.Context())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOut != "" {
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Printf("Exported to %s\n", exportOut)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
