// Item delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an item",
	Long: `Delete removes an item and its tags and criteria. Deleting an id that
does not exist is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runItemDelete,
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteItem(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	fmt.Printf("Deleted item %d\n", id)
	return nil
}
