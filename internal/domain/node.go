package domain

import (
	"errors"
	"fmt"
)

// Node is one taxon, backed by a directory and its descriptor file.
// Immutable once loaded; parentage is derived from the path, never stored.
type Node struct {
	Path        string
	Name        string
	Rank        Rank
	CommonName  string
	Description string
}

// Label returns the display string without color, e.g. "[K] Animalia (animals)".
func (n *Node) Label() string {
	s := fmt.Sprintf("[%s] %s", n.Rank.Code(), n.Name)
	if n.CommonName != "" {
		s += fmt.Sprintf(" (%s)", n.CommonName)
	}
	return s
}

// ErrNoDescriptor marks a directory without a descriptor file. A directory
// discovered during a scan cannot be a node without one, so stores report it
// as a DescriptorError rather than skipping the directory.
var ErrNoDescriptor = errors.New("no descriptor file")

// DescriptorError reports a directory whose descriptor is missing or invalid.
type DescriptorError struct {
	Path string
	Err  error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("descriptor for %s: %v", e.Path, e.Err)
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}
