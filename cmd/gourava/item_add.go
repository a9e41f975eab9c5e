// Item add command creates a new graded item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gourava/gourava/pkg/types"
)

var (
	itemAddTitle    string
	itemAddTags     []string
	itemAddCriteria []string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new item",
	Long: `Add creates a new item with the given title, tags, and criterion ratings.

At least one non-empty tag is required.

Example:
  gourava item add --title Espresso --tag coffee --tag morning \
      --criterion Taste=4 --criterion Aroma=5`,
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().StringVar(&itemAddTitle, "title", "", "item title (required)")
	itemAddCmd.Flags().StringArrayVar(&itemAddTags, "tag", nil, "tag name (repeatable, at least one required)")
	itemAddCmd.Flags().StringArrayVar(&itemAddCriteria, "criterion", nil, "criterion as Name=Rating (repeatable)")
	_ = itemAddCmd.MarkFlagRequired("title")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	tags, err := parseTags(itemAddTags)
	if err != nil {
		return err
	}
	// The store persists whatever it is given; the one-tag minimum is the
	// caller's contract, enforced here.
	if !types.HasNonEmptyTag(tags) {
		return fmt.Errorf("at least one non-empty tag is required")
	}

	criteria, err := parseCriteria(itemAddCriteria)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.AddItem(cmd.Context(), itemAddTitle, tags, criteria)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"id": id, "title": itemAddTitle})
	}
	fmt.Printf("Created item %d: %s\n", id, itemAddTitle)
	return nil
}
