package application

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"taxnav/internal/domain"
)

// Query is a parsed ls/goto argument list: which distances and ranks to
// search, plus name patterns every match must satisfy.
type Query struct {
	Distances []int
	Ranks     []domain.Rank
	NameTerms []string

	patterns []*regexp.Regexp
}

// ParseQuery parses argument tokens per the search grammar:
//
//	-d<N>         search distance N down the tree
//	-d<N1>..<N2>  search the inclusive distance range
//	-l<rank>      search for a rank, by full name or short code
//	<text>        name pattern, case-insensitive substring/regexp
//
// Without distance or rank arguments the query defaults to the direct
// children (-d1).
func ParseQuery(args []string) (*Query, error) {
	q := &Query{}
	distances := make(map[int]bool)
	ranks := make(map[domain.Rank]bool)

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-d"):
			expr := arg[2:]
			if n, err := strconv.Atoi(expr); err == nil {
				distances[n] = true
				continue
			}
			lo, hi, ok := parseRange(expr)
			if !ok {
				return nil, &ParseError{Token: arg, Reason: "not a distance or distance range"}
			}
			for d := lo; d <= hi; d++ {
				distances[d] = true
			}

		case strings.HasPrefix(arg, "-l"):
			rank, ok := domain.ParseRank(arg[2:])
			if !ok {
				return nil, &ParseError{Token: arg, Reason: "no such rank"}
			}
			ranks[rank] = true

		default:
			pat, err := regexp.Compile("(?i)" + arg)
			if err != nil {
				return nil, &ParseError{Token: arg, Reason: "invalid name pattern"}
			}
			q.NameTerms = append(q.NameTerms, arg)
			q.patterns = append(q.patterns, pat)
		}
	}

	// Direct children only, unless told otherwise. This also covers an
	// explicit range that turned out empty, like -d3..1.
	if len(distances) == 0 && len(ranks) == 0 {
		distances[1] = true
	}

	for d := range distances {
		q.Distances = append(q.Distances, d)
	}
	sort.Ints(q.Distances)
	for r := range ranks {
		q.Ranks = append(q.Ranks, r)
	}
	sort.Slice(q.Ranks, func(i, j int) bool { return q.Ranks[i].Order() < q.Ranks[j].Order() })

	return q, nil
}

func parseRange(expr string) (lo, hi int, ok bool) {
	parts := strings.SplitN(expr, "..", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// MatchesName reports whether name satisfies every name term (conjunctive,
// case-insensitive).
func (q *Query) MatchesName(name string) bool {
	for _, pat := range q.patterns {
		if !pat.MatchString(name) {
			return false
		}
	}
	return true
}

// Run drives the index to fill the buckets the query needs and combines
// them: the union of the distance buckets, the union of the rank buckets,
// intersected when both dimensions were requested, then name-filtered.
// Results come back sorted by name.
func (q *Query) Run(ix *TreeIndex) ([]*domain.Node, error) {
	if err := ix.EnsureDistances(q.Distances...); err != nil {
		return nil, err
	}
	if err := ix.EnsureRanks(q.Ranks...); err != nil {
		return nil, err
	}

	distCands := make(map[string]*domain.Node)
	for _, d := range q.Distances {
		for _, n := range ix.AtDistance(d) {
			distCands[n.Path] = n
		}
	}
	rankCands := make(map[string]*domain.Node)
	for _, r := range q.Ranks {
		for _, n := range ix.AtRank(r) {
			rankCands[n.Path] = n
		}
	}

	var combined map[string]*domain.Node
	switch {
	case len(q.Distances) > 0 && len(q.Ranks) > 0:
		combined = make(map[string]*domain.Node)
		for path, n := range distCands {
			if _, ok := rankCands[path]; ok {
				combined[path] = n
			}
		}
	case len(q.Distances) > 0:
		combined = distCands
	default:
		combined = rankCands
	}

	var matches []*domain.Node
	for _, n := range combined {
		if q.MatchesName(n.Name) {
			matches = append(matches, n)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches, nil
}
