package application

import (
	"path/filepath"
	"slices"
	"sort"

	"taxnav/internal/domain"
	"taxnav/internal/ports"
)

// TreeIndex is the lazy, cached scanner rooted at one node. It fills
// per-distance and per-rank buckets of discovered descendants on demand and
// never rescans a distance or rank it has already satisfied.
//
// An index belongs to exactly one navigator position: moving elsewhere
// discards it and builds a fresh one, so there is no invalidation logic.
type TreeIndex struct {
	store ports.TaxonStore
	node  *domain.Node

	// ancestors runs from the root down to the immediate parent.
	ancestors []*domain.Node

	byDistance map[int]map[string]*domain.Node
	byRank     map[domain.Rank]map[string]*domain.Node

	scannedDistances map[int]bool
	scannedRanks     map[domain.Rank]bool
	seen             map[string]bool
}

// NewTreeIndex loads the node at dir, scans its direct children (needed for
// completion candidates and bare-name jumps) and resolves the ancestor chain.
func NewTreeIndex(store ports.TaxonStore, dir string) (*TreeIndex, error) {
	node, err := store.Load(dir)
	if err != nil {
		return nil, err
	}

	ix := &TreeIndex{
		store:            store,
		node:             node,
		byDistance:       make(map[int]map[string]*domain.Node),
		byRank:           make(map[domain.Rank]map[string]*domain.Node),
		scannedDistances: make(map[int]bool),
		scannedRanks:     make(map[domain.Rank]bool),
		seen:             make(map[string]bool),
	}

	if err := ix.EnsureDistances(1); err != nil {
		return nil, err
	}
	if err := ix.loadAncestors(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Node returns the indexed node itself (conceptually distance 0, never
// stored in a bucket).
func (ix *TreeIndex) Node() *domain.Node {
	return ix.node
}

// Ancestors returns the chain from the root to the immediate parent.
func (ix *TreeIndex) Ancestors() []*domain.Node {
	out := make([]*domain.Node, len(ix.ancestors))
	copy(out, ix.ancestors)
	return out
}

// EnsureDistances scans every requested distance that has not been scanned
// yet. A directory found during the scan must load a descriptor; a failure
// aborts the scan and is reported to the caller.
func (ix *TreeIndex) EnsureDistances(distances ...int) error {
	for _, d := range distances {
		if d < 1 || ix.scannedDistances[d] {
			continue
		}
		if err := ix.scan(d, nil); err != nil {
			return err
		}
		ix.scannedDistances[d] = true
	}
	return nil
}

// EnsureRanks scans for the requested ranks. The directory nesting does not
// guarantee one level per rank, so each rank is searched across every depth
// up to the order difference with the indexed node, skipping depths already
// covered by a distance scan. A rank with zero matches still counts as
// searched. Depths visited here are not marked distance-scanned and
// non-matching directories are not remembered, so only what was asked for
// gets cached.
func (ix *TreeIndex) EnsureRanks(targets ...domain.Rank) error {
	want := make(map[domain.Rank]bool)
	maxDepth := 0
	for _, r := range targets {
		if ix.scannedRanks[r] {
			continue
		}
		want[r] = true
		if d := domain.DepthBetween(r, ix.node.Rank); d > maxDepth {
			maxDepth = d
		}
	}
	if len(want) == 0 {
		return nil
	}

	for d := 1; d <= maxDepth; d++ {
		if ix.scannedDistances[d] {
			continue
		}
		if err := ix.scan(d, want); err != nil {
			return err
		}
	}

	for r := range want {
		ix.scannedRanks[r] = true
	}
	return nil
}

// AtDistance returns the cached nodes exactly d levels below the indexed
// node. Callers must EnsureDistances(d) first for a complete answer.
func (ix *TreeIndex) AtDistance(d int) []*domain.Node {
	return collect(ix.byDistance[d])
}

// AtRank returns the cached nodes of rank r. Callers must EnsureRanks(r)
// first for a complete answer.
func (ix *TreeIndex) AtRank(r domain.Rank) []*domain.Node {
	return collect(ix.byRank[r])
}

// scan enumerates the directories at distance d and loads every one not
// already seen. With a non-nil rank filter only matching nodes are cached;
// the rest are forgotten entirely.
func (ix *TreeIndex) scan(d int, ranks map[domain.Rank]bool) error {
	dirs, err := ix.store.Descendants(ix.node.Path, d)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if ix.seen[dir] {
			continue
		}
		node, err := ix.store.Load(dir)
		if err != nil {
			return err
		}
		if ranks != nil && !ranks[node.Rank] {
			continue
		}
		ix.add(node, d)
	}
	return nil
}

// add inserts a node into its distance and rank buckets and marks its path
// seen, so no later scan loads the same directory again.
func (ix *TreeIndex) add(node *domain.Node, d int) {
	if ix.byDistance[d] == nil {
		ix.byDistance[d] = make(map[string]*domain.Node)
	}
	ix.byDistance[d][node.Path] = node

	if ix.byRank[node.Rank] == nil {
		ix.byRank[node.Rank] = make(map[string]*domain.Node)
	}
	ix.byRank[node.Rank][node.Path] = node

	ix.seen[node.Path] = true
}

// loadAncestors walks up the directory tree until no descriptor is found.
func (ix *TreeIndex) loadAncestors() error {
	var chain []*domain.Node
	dir := ix.node.Path
	for {
		parent := filepath.Dir(dir)
		if parent == dir || !ix.store.IsNode(parent) {
			break
		}
		node, err := ix.store.Load(parent)
		if err != nil {
			return err
		}
		chain = append(chain, node)
		dir = parent
	}
	slices.Reverse(chain)
	ix.ancestors = chain
	return nil
}

func collect(bucket map[string]*domain.Node) []*domain.Node {
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*domain.Node, 0, len(bucket))
	for _, n := range bucket {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
