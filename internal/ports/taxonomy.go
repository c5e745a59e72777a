package ports

import "taxnav/internal/domain"

// TaxonStore loads taxon descriptors and enumerates the directory tree
// beneath a node.
type TaxonStore interface {
	// Load reads the descriptor in dir and returns the node it describes.
	// A missing or malformed descriptor yields a *domain.DescriptorError.
	Load(dir string) (*domain.Node, error)

	// IsNode reports whether dir carries a descriptor file.
	IsNode(dir string) bool

	// Descendants lists the directories exactly depth levels below root,
	// hidden directories excluded. It does not check for descriptors.
	Descendants(root string, depth int) ([]string, error)
}
