// Template delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templateDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a template",
	Long: `Delete removes a template and its tag and criterion lists. Items
created from it are untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateDelete,
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteTemplate(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	fmt.Printf("Deleted template %d\n", id)
	return nil
}
