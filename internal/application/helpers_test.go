package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxnav/internal/adapters/filesystem"
	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

func writeTaxon(t *testing.T, dir, level, common, info string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "level: %s\n", level)
	if common != "" {
		fmt.Fprintf(&b, "common: %s\n", common)
	}
	if info != "" {
		fmt.Fprintf(&b, "info: %s\n", info)
	}

	if err := os.WriteFile(filepath.Join(dir, filesystem.DescriptorFile), []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
}

// buildTaxonomy creates the test tree and returns the root (Life) directory:
//
//	Life
//	├── Eukarya
//	│   ├── Animalia
//	│   │   └── Chordata
//	│   │       └── Mammalia
//	│   └── Plantae
//	└── Bacteria
func buildTaxonomy(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Life")
	writeTaxon(t, root, "life", "", "All known living organisms.")
	writeTaxon(t, filepath.Join(root, "Eukarya"), "domain", "", "")
	writeTaxon(t, filepath.Join(root, "Eukarya", "Animalia"), "kingdom", "animals", "Multicellular heterotrophs.")
	writeTaxon(t, filepath.Join(root, "Eukarya", "Animalia", "Chordata"), "phylum", "", "")
	writeTaxon(t, filepath.Join(root, "Eukarya", "Animalia", "Chordata", "Mammalia"), "class", "mammals", "")
	writeTaxon(t, filepath.Join(root, "Eukarya", "Plantae"), "kingdom", "plants", "")
	writeTaxon(t, filepath.Join(root, "Bacteria"), "domain", "", "")
	return root
}

// countingStore wraps a TaxonStore and counts filesystem work, so cache
// idempotence is observable.
type countingStore struct {
	inner ports.TaxonStore
	loads int
	scans int
}

func newCountingStore() *countingStore {
	return &countingStore{inner: filesystem.NewStore()}
}

func (c *countingStore) Load(dir string) (*domain.Node, error) {
	c.loads++
	return c.inner.Load(dir)
}

func (c *countingStore) IsNode(dir string) bool {
	return c.inner.IsNode(dir)
}

func (c *countingStore) Descendants(root string, depth int) ([]string, error) {
	c.scans++
	return c.inner.Descendants(root, depth)
}

func names(nodes []*domain.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
