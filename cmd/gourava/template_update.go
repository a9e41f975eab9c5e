// Template update command replaces a template's name, tags, and criteria.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	templateUpdateName     string
	templateUpdateTags     []string
	templateUpdateCriteria []string
)

var templateUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a template",
	Long: `Update sets the template's name and replaces its tag and criterion
lists with the given ones. Items previously created from the template keep
their own copies and are not affected.`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateUpdate,
}

func init() {
	templateUpdateCmd.Flags().StringVar(&templateUpdateName, "name", "", "template name (required)")
	templateUpdateCmd.Flags().StringArrayVar(&templateUpdateTags, "tag", nil, "tag name (repeatable)")
	templateUpdateCmd.Flags().StringArrayVar(&templateUpdateCriteria, "criterion", nil, "criterion name (repeatable)")
	_ = templateUpdateCmd.MarkFlagRequired("name")
}

func runTemplateUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateTemplate(cmd.Context(), id, templateUpdateName, templateUpdateTags, templateUpdateCriteria); err != nil {
		return fmt.Errorf("update template: %w", err)
	}

	fmt.Printf("Updated template %d\n", id)
	return nil
}
