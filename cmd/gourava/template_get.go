// Template get command.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gourava/gourava/pkg/types"
)

var templateGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show one template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateGet,
}

func runTemplateGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	tmpl, err := store.TemplateByID(cmd.Context(), id)
	if errors.Is(err, types.ErrNotFound) {
		return fmt.Errorf("template %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("get template: %w", err)
	}

	if flagJSON {
		return printJSON(tmpl)
	}

	fmt.Printf("%s  %s\n", tmpl.ID, tmpl.Name)
	if len(tmpl.Tags) > 0 {
		fmt.Printf("    tags: %s\n", strings.Join(tmpl.Tags, ", "))
	}
	if len(tmpl.Criteria) > 0 {
		fmt.Printf("    criteria: %s\n", strings.Join(tmpl.Criteria, ", "))
	}
	return nil
}
