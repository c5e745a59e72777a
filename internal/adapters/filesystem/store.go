package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"taxnav/internal/domain"
)

// DescriptorFile is the per-directory metadata file that makes a directory
// a taxon.
const DescriptorFile = ".info.yml"

// Store implements ports.TaxonStore over the filesystem.
type Store struct{}

// NewStore creates a new filesystem store.
func NewStore() *Store {
	return &Store{}
}

// descriptor mirrors the recognized fields of a .info.yml file. The node's
// display name is the directory basename, never a descriptor field.
type descriptor struct {
	Level  string `yaml:"level"`
	Common string `yaml:"common"`
	Info   string `yaml:"info"`
}

// Load reads the descriptor in dir and returns the node it describes.
func (s *Store) Load(dir string) (*domain.Node, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	data, err := os.ReadFile(filepath.Join(abs, DescriptorFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.DescriptorError{Path: abs, Err: domain.ErrNoDescriptor}
		}
		return nil, &domain.DescriptorError{Path: abs, Err: err}
	}

	var d descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, &domain.DescriptorError{Path: abs, Err: err}
	}

	rank := domain.Rank(d.Level)
	if !rank.Valid() {
		return nil, &domain.DescriptorError{Path: abs, Err: fmt.Errorf("unknown level %q", d.Level)}
	}

	return &domain.Node{
		Path:        abs,
		Name:        filepath.Base(abs),
		Rank:        rank,
		CommonName:  d.Common,
		Description: d.Info,
	}, nil
}

// IsNode reports whether dir carries a descriptor file.
func (s *Store) IsNode(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, DescriptorFile))
	return err == nil && !info.IsDir()
}

// Descendants lists the directories exactly depth levels below root in
// sorted order. Dot-directories are not part of the taxonomy and are skipped.
func (s *Store) Descendants(root string, depth int) ([]string, error) {
	if depth < 1 {
		return nil, nil
	}

	level := []string{root}
	for i := 0; i < depth; i++ {
		var next []string
		for _, dir := range level {
			entries, err := os.ReadDir(dir)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", dir, err)
			}
			for _, e := range entries {
				if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
					continue
				}
				next = append(next, filepath.Join(dir, e.Name()))
			}
		}
		level = next
	}

	sort.Strings(level)
	return level, nil
}
