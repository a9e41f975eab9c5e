// Item command group.
package main

import "github.com/spf13/cobra"

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage graded items",
}

func init() {
	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemUpdateCmd)
	itemCmd.AddCommand(itemDeleteCmd)
}
