package commands

import (
	"context"

	"taxnav/internal/application"
	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// SearchCommand runs one distance/rank/name query rooted at a node.
type SearchCommand struct {
	store ports.TaxonStore
	Dir   string
	Args  []string
}

// NewSearchCommand creates a new SearchCommand.
func NewSearchCommand(store ports.TaxonStore, dir string, args []string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Dir:   dir,
		Args:  args,
	}
}

// Execute parses the query arguments and returns the matching nodes sorted
// by name.
func (c *SearchCommand) Execute(ctx context.Context) ([]*domain.Node, error) {
	q, err := application.ParseQuery(c.Args)
	if err != nil {
		return nil, err
	}

	ix, err := application.NewTreeIndex(c.store, c.Dir)
	if err != nil {
		return nil, err
	}

	return q.Run(ix)
}
