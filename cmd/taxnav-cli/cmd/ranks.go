package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxnav/internal/domain"
)

var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "List the classification rank vocabulary",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range domain.Ranks() {
			fmt.Printf("%2d  %-2s  %s\n", r.Order(), r.Code(), r)
		}
	},
}

func init() {
	rootCmd.AddCommand(ranksCmd)
}
