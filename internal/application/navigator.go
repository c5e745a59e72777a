package application

import (
	"sort"
	"strings"

	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// Navigator is one position in the taxonomy: the node's tree index plus the
// sorted completion candidates derived from it. Every movement builds a
// fresh Navigator; indexes are never carried between positions.
type Navigator struct {
	store      ports.TaxonStore
	index      *TreeIndex
	candidates []string
}

// NewNavigator builds a navigator rooted at dir.
func NewNavigator(store ports.TaxonStore, dir string) (*Navigator, error) {
	ix, err := NewTreeIndex(store, dir)
	if err != nil {
		return nil, err
	}

	nav := &Navigator{store: store, index: ix}
	nav.candidates = candidateNames(ix)
	return nav, nil
}

// candidateNames collects the names reachable in one hop: direct children
// and ancestors.
func candidateNames(ix *TreeIndex) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range ix.AtDistance(1) {
		if !seen[n.Name] {
			seen[n.Name] = true
			names = append(names, n.Name)
		}
	}
	for _, n := range ix.Ancestors() {
		if !seen[n.Name] {
			seen[n.Name] = true
			names = append(names, n.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Node returns the current node.
func (nav *Navigator) Node() *domain.Node {
	return nav.index.Node()
}

// Index exposes the position's tree index.
func (nav *Navigator) Index() *TreeIndex {
	return nav.index
}

// Breadcrumb returns the chain from the root through the current node.
func (nav *Navigator) Breadcrumb() []*domain.Node {
	return append(nav.index.Ancestors(), nav.index.Node())
}

// Candidates returns the sorted jump candidates (direct children and
// ancestors) for completion.
func (nav *Navigator) Candidates() []string {
	out := make([]string, len(nav.candidates))
	copy(out, nav.candidates)
	return out
}

// Search runs a query against the current position.
func (nav *Navigator) Search(q *Query) ([]*domain.Node, error) {
	return q.Run(nav.index)
}

// Goto runs a query and moves when it matched exactly one node. With zero
// or multiple matches it returns ErrNoUniqueEntry together with the matches
// so the caller can list them; the current position is unchanged.
func (nav *Navigator) Goto(q *Query) (*Navigator, []*domain.Node, error) {
	matches, err := nav.Search(q)
	if err != nil {
		return nil, nil, err
	}
	if len(matches) != 1 {
		return nil, matches, ErrNoUniqueEntry
	}
	next, err := NewNavigator(nav.store, matches[0].Path)
	if err != nil {
		return nil, nil, err
	}
	return next, matches, nil
}

// Up moves steps levels towards the root, clamping at the root. Steps below
// one count as one. The resulting position is rebuilt from scratch even when
// it is the current node.
func (nav *Navigator) Up(steps int) (*Navigator, error) {
	if steps < 1 {
		steps = 1
	}
	ancestors := nav.index.Ancestors()
	if len(ancestors) == 0 {
		return NewNavigator(nav.store, nav.Node().Path)
	}
	i := len(ancestors) - steps
	if i < 0 {
		i = 0
	}
	return NewNavigator(nav.store, ancestors[i].Path)
}

// Jump moves to the single ancestor or direct child whose name equals name
// case-insensitively. Anything else is an unknown command.
func (nav *Navigator) Jump(name string) (*Navigator, error) {
	lower := strings.ToLower(name)

	var matches []*domain.Node
	for _, n := range nav.index.AtDistance(1) {
		if strings.ToLower(n.Name) == lower {
			matches = append(matches, n)
		}
	}
	for _, n := range nav.index.Ancestors() {
		if strings.ToLower(n.Name) == lower {
			matches = append(matches, n)
		}
	}

	if len(matches) != 1 {
		return nil, &UnknownCommandError{Name: name}
	}
	return NewNavigator(nav.store, matches[0].Path)
}
