package recommend

import (
	"cmp"
	"math"
	"slices"
)

const (
	MinScore = 0
	MaxScore = 100
)

// Clamp rounds a raw weighted sum and bounds it to [0, 100]. Raw sums may be
// negative because of penalties or exceed 100 because of stacked bonuses.
func Clamp(raw float64) int {
	if math.IsNaN(raw) {
		return MinScore
	}
	score := math.Round(raw)
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return int(score)
}

// Rank sorts items by descending score and keeps at most limit of them.
// Equal scores keep their catalog order.
func Rank[T any](items []T, score func(T) int, limit int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(score(b), score(a))
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ScorePtr returns a pointer to a copy of score, for optional MatchScore fields
func ScorePtr(score int) *int {
	return &score
}

// ScoreOf dereferences an optional score, treating nil as zero
func ScoreOf(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
