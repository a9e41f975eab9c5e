// Template list command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	templates, err := store.Templates(cmd.Context())
	if err != nil {
		return fmt.Errorf("list templates: %w", err)
	}

	if flagJSON {
		return printJSON(templates)
	}

	if len(templates) == 0 {
		fmt.Println("No templates.")
		return nil
	}
	for _, t := range templates {
		fmt.Printf("%s  %s\n", t.ID, t.Name)
		if len(t.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(t.Tags, ", "))
		}
		if len(t.Criteria) > 0 {
			fmt.Printf("    criteria: %s\n", strings.Join(t.Criteria, ", "))
		}
	}
	return nil
}
