// Item list command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var itemListLimit int

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List items",
	Long: `List prints all items with their tags and criterion ratings.

With --limit N, a random sample of N items is shown instead; the sample is
re-drawn on every call.`,
	Args: cobra.NoArgs,
	RunE: runItemList,
}

func init() {
	itemListCmd.Flags().IntVar(&itemListLimit, "limit", 0, "random sample size (0 = all)")
}

func runItemList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	items, err := store.Items(cmd.Context(), itemListLimit)
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}

	if flagJSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No items.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%s  %s\n", item.ID, item.Title)
		if len(item.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(item.TagNames(), ", "))
		}
		for _, c := range item.CriteriaRatings {
			fmt.Printf("    %s: %g\n", c.Name, c.Rating)
		}
	}
	return nil
}
