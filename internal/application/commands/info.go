package commands

import (
	"context"

	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// InfoCommand loads one node for metadata display.
type InfoCommand struct {
	store ports.TaxonStore
	Dir   string
}

// NewInfoCommand creates a new InfoCommand.
func NewInfoCommand(store ports.TaxonStore, dir string) *InfoCommand {
	return &InfoCommand{store: store, Dir: dir}
}

// Execute returns the node; an empty Description means there is no info.
func (c *InfoCommand) Execute(ctx context.Context) (*domain.Node, error) {
	return c.store.Load(c.Dir)
}
