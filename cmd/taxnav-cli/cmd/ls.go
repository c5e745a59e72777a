package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taxnav/internal/application/commands"
)

var (
	lsDistances []string
	lsRanks     []string
)

var lsCmd = &cobra.Command{
	Use:   "ls [-d <n>|<n1>..<n2>] [-l <rank>] [name...]",
	Short: "Search descendant nodes",
	Long: `Search the descendants of a node.

-d selects a distance (directory levels below the node) or an inclusive
range like 1..3. -l selects a classification rank by full name or short
code. Both are repeatable. Positional arguments are case-insensitive name
patterns a match must satisfy all of. With no -d and no -l the search
covers the direct children only.

Examples:
  taxnav-cli ls
  taxnav-cli ls -d 1..3 -l kingdom
  taxnav-cli ls --at Eukarya/Animalia -l phylum chord`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		query := make([]string, 0, len(lsDistances)+len(lsRanks)+len(args))
		for _, d := range lsDistances {
			query = append(query, "-d"+d)
		}
		for _, r := range lsRanks {
			query = append(query, "-l"+r)
		}
		query = append(query, args...)

		search := commands.NewSearchCommand(GetStore(), nodeDir(), query)
		nodes, err := search.Execute(ctx)
		if err != nil {
			return err
		}

		for _, n := range nodes {
			fmt.Println(n.Label())
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringArrayVarP(&lsDistances, "distance", "d", nil, "distance or inclusive range to search (repeatable)")
	lsCmd.Flags().StringArrayVarP(&lsRanks, "rank", "l", nil, "rank to search, by name or short code (repeatable)")
	rootCmd.AddCommand(lsCmd)
}
