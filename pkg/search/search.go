package search

import (
	"sort"
	"strings"

	"packaging-catalog-be/pkg/fuzzy"
)

const (
	// DefaultMinScore is the ranking cut-off: candidates scoring at or below
	// it are dropped from the result set entirely.
	DefaultMinScore = 0.3

	// skuWeight discounts SKU hits so an exact name match always outranks an
	// exact SKU match.
	skuWeight = 0.8
)

// Candidate is the minimal searchable shape: a display name plus an optional
// SKU. A missing SKU is normalized to "" by the caller, not in here.
type Candidate struct {
	Name string
	SKU  string
}

// Params drives one ranked, paginated search. Page and PageSize must be >= 1;
// violating that is a caller bug, not a runtime condition.
// Zero MinScore and Threshold fall back to the package defaults.
type Params struct {
	Query     string
	Page      int
	PageSize  int
	MinScore  float64
	Threshold float64
}

// Result has the same shape whether the query went through fuzzy ranking or
// the plain pagination path, so callers stay agnostic to which one served it.
type Result[T any] struct {
	Items       []T
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// Score rates a candidate against the query. Name matches are authoritative;
// SKU matches are kept but discounted.
func Score(c Candidate, query string, threshold float64) float64 {
	nameScore := fuzzy.Match(c.Name, query, threshold).Score
	skuScore := fuzzy.Match(c.SKU, query, threshold).Score * skuWeight
	if skuScore > nameScore {
		return skuScore
	}
	return nameScore
}

// Paginate scores every candidate against p.Query, drops those at or below
// p.MinScore, sorts the survivors by score (stable, descending) and slices
// out the requested page. TotalCount and TotalPages reflect the post-filter
// set, never the raw candidate count.
//
// A blank query skips scoring and pages over the input in its supplied order,
// which by catalog convention is newest first. A page past the end yields an
// empty Items slice with the metadata still intact.
//
// The fields callback keeps this package decoupled from the product schema:
// it extracts (name, sku) from whatever record type the caller ranks.
func Paginate[T any](candidates []T, fields func(T) (name, sku string), p Params) Result[T] {
	if p.MinScore == 0 {
		p.MinScore = DefaultMinScore
	}
	if p.Threshold == 0 {
		p.Threshold = fuzzy.DefaultThreshold
	}

	query := strings.TrimSpace(p.Query)
	if query == "" {
		return paginate(candidates, p.Page, p.PageSize)
	}

	type scored struct {
		item  T
		score float64
	}
	matched := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		name, sku := fields(c)
		s := Score(Candidate{Name: name, SKU: sku}, query, p.Threshold)
		if s > p.MinScore {
			matched = append(matched, scored{item: c, score: s})
		}
	}

	// Stable: equal scores keep the candidates' original relative order, so
	// repeated identical calls rank identically.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	items := make([]T, len(matched))
	for i, m := range matched {
		items[i] = m.item
	}
	return paginate(items, p.Page, p.PageSize)
}

func paginate[T any](items []T, page, pageSize int) Result[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items:       items[start:end],
		TotalCount:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}
