// Stats commands: tag and criterion usage counts.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gourava/gourava/pkg/types"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tag and criterion usage counts",
}

var statsTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Show tag usage counts",
	Long: `Tags counts how many items carry each distinct tag name, across all
items. Without --limit the full list is shown, most used first. With
--limit N, a random sample of N names is shown instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.Context(), func(ctx context.Context) ([]types.UsageCount, error) {
			store, err := openStore()
			if err != nil {
				return nil, err
			}
			defer store.Close()
			return store.TagUsage(ctx, statsLimit)
		})
	},
}

var statsCriteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "Show criterion usage counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.Context(), func(ctx context.Context) ([]types.UsageCount, error) {
			store, err := openStore()
			if err != nil {
				return nil, err
			}
			defer store.Close()
			return store.CriterionUsage(ctx, statsLimit)
		})
	},
}

func init() {
	statsCmd.PersistentFlags().IntVar(&statsLimit, "limit", 0, "random sample size (0 = full sorted list)")
	statsCmd.AddCommand(statsTagsCmd)
	statsCmd.AddCommand(statsCriteriaCmd)
}

// runStats fetches usage counts and prints them.
func runStats(ctx context.Context, fetch func(context.Context) ([]types.UsageCount, error)) error {
	counts, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("usage counts: %w", err)
	}

	if flagJSON {
		return printJSON(counts)
	}

	if len(counts) == 0 {
		fmt.Println("No usage yet.")
		return nil
	}
	for _, uc := range counts {
		fmt.Printf("%5d  %s\n", uc.Count, uc.Name)
	}
	return nil
}
