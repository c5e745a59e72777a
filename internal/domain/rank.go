package domain

import "strings"

// Rank is one tier of the classification vocabulary (domain, kingdom,
// phylum, ...). The zero value is not a valid rank.
type Rank string

const (
	RankLife         Rank = "life"
	RankDomain       Rank = "domain"
	RankKingdom      Rank = "kingdom"
	RankSubkingdom   Rank = "subkingdom"
	RankSuperphylum  Rank = "superphylum"
	RankPhylum       Rank = "phylum"
	RankSubphylum    Rank = "subphylum"
	RankSuperclass   Rank = "superclass"
	RankClass        Rank = "class"
	RankSubclass     Rank = "subclass"
	RankSuperorder   Rank = "superorder"
	RankOrder        Rank = "order"
	RankSuborder     Rank = "suborder"
	RankSuperfamily  Rank = "superfamily"
	RankFamily       Rank = "family"
	RankSubfamily    Rank = "subfamily"
	RankGenus        Rank = "genus"
	RankSubgenus     Rank = "subgenus"
	RankSuperspecies Rank = "superspecies"
	RankSpecies      Rank = "species"
	RankSubspecies   Rank = "subspecies"
)

type rankInfo struct {
	order int
	code  string
	color string
}

// The numeric order bounds how deep a rank search has to descend; it does
// not promise one directory level per rank. Note suborder is 13, not 12.
var ranks = map[Rank]rankInfo{
	RankLife:         {0, "L", "#FF5F87"},
	RankDomain:       {1, "D", "#87FF87"},
	RankKingdom:      {2, "K", "#FFFF5F"},
	RankSubkingdom:   {3, "K-", "#5FAFFF"},
	RankSuperphylum:  {4, "P+", "#FFFF5F"},
	RankPhylum:       {5, "P", "#D75FFF"},
	RankSubphylum:    {6, "P-", "#FFFFFF"},
	RankSuperclass:   {7, "C+", "#FFFFFF"},
	RankClass:        {8, "C", "#DADADA"},
	RankSubclass:     {9, "C-", "#FFFFFF"},
	RankSuperorder:   {10, "O+", "#FFFFFF"},
	RankOrder:        {11, "O", "#FFFFFF"},
	RankSuborder:     {13, "O-", "#FFFFFF"},
	RankSuperfamily:  {14, "F+", "#FFFFFF"},
	RankFamily:       {15, "F", "#FFFFFF"},
	RankSubfamily:    {16, "F-", "#FFFFFF"},
	RankGenus:        {17, "G", "#FFFFFF"},
	RankSubgenus:     {18, "G-", "#FFFFFF"},
	RankSuperspecies: {19, "S+", "#FFFFFF"},
	RankSpecies:      {20, "S", "#FFFFFF"},
	RankSubspecies:   {21, "S-", "#FFFFFF"},
}

var rankOrder = []Rank{
	RankLife, RankDomain, RankKingdom, RankSubkingdom, RankSuperphylum,
	RankPhylum, RankSubphylum, RankSuperclass, RankClass, RankSubclass,
	RankSuperorder, RankOrder, RankSuborder, RankSuperfamily, RankFamily,
	RankSubfamily, RankGenus, RankSubgenus, RankSuperspecies, RankSpecies,
	RankSubspecies,
}

// Ranks returns the full vocabulary from broadest to narrowest.
func Ranks() []Rank {
	out := make([]Rank, len(rankOrder))
	copy(out, rankOrder)
	return out
}

// Valid reports whether r belongs to the vocabulary.
func (r Rank) Valid() bool {
	_, ok := ranks[r]
	return ok
}

// Order returns the rank's position in the vocabulary.
func (r Rank) Order() int {
	return ranks[r].order
}

// Code returns the short display code, e.g. "K-" for subkingdom.
func (r Rank) Code() string {
	return ranks[r].code
}

// Color returns the rank's display color as a hex string.
func (r Rank) Color() string {
	return ranks[r].color
}

func (r Rank) String() string {
	return string(r)
}

// ParseRank resolves a token by case-insensitive full name or exact
// short code.
func ParseRank(s string) (Rank, bool) {
	if r := Rank(strings.ToLower(s)); r.Valid() {
		return r, true
	}
	for r, info := range ranks {
		if info.code == s {
			return r, true
		}
	}
	return "", false
}

// DepthBetween returns the maximum plausible directory distance between two
// ranks: the tree may skip or repeat ranks per level, so any rank search has
// to cover every depth up to the order difference.
func DepthBetween(a, b Rank) int {
	d := a.Order() - b.Order()
	if d < 0 {
		return -d
	}
	return d
}
