// Package models defines the data structures shared across the pipeline.
package models

import (
	"math"
	"sort"
)

// WeightedKeyword is the ordered, display-friendly form of one keyword.
type WeightedKeyword struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// KeywordSet maps keyword text to its accumulated relevance weight.
// Identity is the text alone; the weight is payload that merge operations
// are free to update in place.
type KeywordSet map[string]float64

// Merge folds other into the receiver. Keywords present on both sides keep
// their text and sum their weights; everything else is inserted unchanged.
// Merging an empty set is a no-op.
func (ks KeywordSet) Merge(other KeywordSet) {
	for text, weight := range other {
		ks[text] += weight
	}
}

// Clone returns an independent copy of the set.
func (ks KeywordSet) Clone() KeywordSet {
	out := make(KeywordSet, len(ks))
	for text, weight := range ks {
		out[text] = weight
	}
	return out
}

// Equal reports whether two sets contain the same keywords with weights
// within tol of each other. Merge order affects floating-point sums, so
// comparisons always go through a tolerance.
func (ks KeywordSet) Equal(other KeywordSet, tol float64) bool {
	if len(ks) != len(other) {
		return false
	}
	for text, weight := range ks {
		ow, ok := other[text]
		if !ok || math.Abs(weight-ow) > tol {
			return false
		}
	}
	return true
}

// Top returns the n heaviest keywords, weight descending, text ascending on
// ties so output is stable run to run.
func (ks KeywordSet) Top(n int) []WeightedKeyword {
	sorted := make([]WeightedKeyword, 0, len(ks))
	for text, weight := range ks {
		sorted = append(sorted, WeightedKeyword{Text: text, Weight: weight})
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight > sorted[j].Weight
		}
		return sorted[i].Text < sorted[j].Text
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
