package faqrank

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Ranks returns, for every question row of a questions-by-classes score
// matrix, the 1-based position of its true class column when all classes are
// sorted by descending score. The sort is stable, so exact score ties keep
// the original class-column order and ranks stay reproducible.
func Ranks(probs *mat.Dense, trueCols []int) []int {
	rows, cols := probs.Dims()
	ranks := make([]int, rows)
	order := make([]int, cols)

	for i := 0; i < rows; i++ {
		for c := range order {
			order[c] = c
		}
		sort.SliceStable(order, func(a, b int) bool {
			return probs.At(i, order[a]) > probs.At(i, order[b])
		})
		for pos, c := range order {
			if c == trueCols[i] {
				ranks[i] = pos + 1
				break
			}
		}
	}
	return ranks
}

// AverageRank is the floored mean of the ranks. The floor applies to the
// mean, not per question; this matches the reference metric exactly.
func AverageRank(ranks []int) float64 {
	var sum float64
	for _, r := range ranks {
		sum += float64(r)
	}
	return math.Floor(sum / float64(len(ranks)))
}

// TopThree is the fraction of questions whose true class ranked in the top
// 3, rounded to 3 decimal places.
func TopThree(ranks []int) float64 {
	var hits float64
	for _, r := range ranks {
		if r <= 3 {
			hits++
		}
	}
	return math.Round(hits/float64(len(ranks))*1000) / 1000
}
