// Item update command replaces an item's title, tags, and criteria.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	itemUpdateTitle    string
	itemUpdateTags     []string
	itemUpdateCriteria []string
)

var itemUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an item",
	Long: `Update sets the item's title and replaces its tag and criterion sets
with the given ones. Tags and criteria not repeated on the command line are
dropped; the stored sets always match the flags exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&itemUpdateTitle, "title", "", "item title (required)")
	itemUpdateCmd.Flags().StringArrayVar(&itemUpdateTags, "tag", nil, "tag name (repeatable)")
	itemUpdateCmd.Flags().StringArrayVar(&itemUpdateCriteria, "criterion", nil, "criterion as Name=Rating (repeatable)")
	_ = itemUpdateCmd.MarkFlagRequired("title")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	tags, err := parseTags(itemUpdateTags)
	if err != nil {
		return err
	}
	criteria, err := parseCriteria(itemUpdateCriteria)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.UpdateItem(cmd.Context(), id, itemUpdateTitle, tags, criteria); err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	fmt.Printf("Updated item %d\n", id)
	return nil
}
