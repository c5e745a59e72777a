package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taxnav/internal/application/commands"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show a node's description",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		node, err := commands.NewInfoCommand(GetStore(), nodeDir()).Execute(ctx)
		if err != nil {
			return err
		}

		if node.Description == "" {
			fmt.Printf("No info for %s.\n", node.Name)
			return nil
		}
		fmt.Println(node.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
