// Template create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	templateCreateName     string
	templateCreateTags     []string
	templateCreateCriteria []string
)

var templateCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new template",
	Long: `Create a template that pre-fills tags and criterion names when a new
item is made from it. Template criteria carry no ratings.

Example:
  gourava template create --name Pizza --tag Italian --tag Pizza \
      --criterion Taste --criterion Firmness`,
	RunE: runTemplateCreate,
}

func init() {
	templateCreateCmd.Flags().StringVar(&templateCreateName, "name", "", "template name (required)")
	templateCreateCmd.Flags().StringArrayVar(&templateCreateTags, "tag", nil, "tag name (repeatable)")
	templateCreateCmd.Flags().StringArrayVar(&templateCreateCriteria, "criterion", nil, "criterion name (repeatable)")
	_ = templateCreateCmd.MarkFlagRequired("name")
}

func runTemplateCreate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.CreateTemplate(cmd.Context(), templateCreateName, templateCreateTags, templateCreateCriteria)
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"id": id, "name": templateCreateName})
	}
	fmt.Printf("Created template %d: %s\n", id, templateCreateName)
	return nil
}
