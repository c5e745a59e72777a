package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taxnav/internal/application/commands"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the chain from the taxonomy root through a node",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		chain, err := commands.NewPathCommand(GetStore(), nodeDir()).Execute(ctx)
		if err != nil {
			return err
		}

		parts := make([]string, 0, len(chain))
		for _, n := range chain {
			parts = append(parts, n.Label())
		}
		fmt.Println(strings.Join(parts, " -> "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
