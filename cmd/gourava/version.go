package main

import (
	"fmt"

	"github.com/gourava/gourava/pkg/gourava"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gourava version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gourava v%s\n", gourava.Version)
	},
}
