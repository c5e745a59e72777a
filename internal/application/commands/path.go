package commands

import (
	"context"

	"taxnav/internal/application"
	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// PathCommand resolves the chain from the taxonomy root through a node.
type PathCommand struct {
	store ports.TaxonStore
	Dir   string
}

// NewPathCommand creates a new PathCommand.
func NewPathCommand(store ports.TaxonStore, dir string) *PathCommand {
	return &PathCommand{store: store, Dir: dir}
}

// Execute returns the breadcrumb, root first, current node last.
func (c *PathCommand) Execute(ctx context.Context) ([]*domain.Node, error) {
	nav, err := application.NewNavigator(c.store, c.Dir)
	if err != nil {
		return nil, err
	}
	return nav.Breadcrumb(), nil
}
