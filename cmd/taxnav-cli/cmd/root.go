package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"taxnav/internal/adapters/filesystem"
	"taxnav/internal/config"
	"taxnav/internal/ports"
)

var (
	rootPath string
	atPath   string
	store    ports.TaxonStore
)

var rootCmd = &cobra.Command{
	Use:   "taxnav-cli",
	Short: "Query a taxonomy tree from the command line",
	Long: `taxnav-cli is the non-interactive surface of taxnav: it runs one
query against a taxonomy stored as a directory tree, where every directory
carries a .info.yml descriptor naming its classification rank.

For interactive navigation use the taxnav binary instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = filesystem.NewStore()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.RootPath(), "path to the taxonomy root")
	rootCmd.PersistentFlags().StringVar(&atPath, "at", "", "node to operate on, relative to the root (default: the root)")
}

// GetStore returns the initialized store
func GetStore() ports.TaxonStore {
	return store
}

// nodeDir resolves the --at flag against the taxonomy root.
func nodeDir() string {
	if atPath == "" {
		return rootPath
	}
	if filepath.IsAbs(atPath) {
		return atPath
	}
	return filepath.Join(rootPath, atPath)
}
