package classifier

import (
	"math"
	"sort"

	"github.com/faqrank/faqrank/internal/vectorizer"
	"gonum.org/v1/gonum/mat"
)

// Prior returns P(class) over the index columns: class frequency divided by
// the number of training questions. The vector sums to 1.
func Prior(labels []int, index *ClassIndex) []float64 {
	prior := make([]float64, index.Len())
	for _, l := range labels {
		if c := index.Column(l); c >= 0 {
			prior[c]++
		}
	}
	total := float64(len(labels))
	for c := range prior {
		prior[c] /= total
	}
	return prior
}

// Posterior estimates P(class | token) from a tokens-by-classes count matrix
// and the class prior: the MAP combination N_wA * P_A, normalized per token.
// It is used only to rank candidate tokens for feature selection, never fed
// into the final weights. A token with zero total count gets a zero row.
func Posterior(classCounts *mat.Dense, prior []float64) *mat.Dense {
	rows, cols := classCounts.Dims()
	post := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		var total float64
		for a := 0; a < cols; a++ {
			total += classCounts.At(i, a) * prior[a]
		}
		if total == 0 {
			continue
		}
		for a := 0; a < cols; a++ {
			post.Set(i, a, classCounts.At(i, a)*prior[a]/total)
		}
	}
	return post
}

// SelectFeatures picks, for every class, the topN tokens with the highest
// posterior probability and returns the union as an allowed-token set for
// rebuilding the vocabulary. Ties break toward the lower token id, so the
// selection is deterministic.
func SelectFeatures(posterior *mat.Dense, vocab *vectorizer.Vocabulary, topN int) map[string]bool {
	rows, cols := posterior.Dims()
	selected := make(map[string]bool)
	order := make([]int, rows)

	for a := 0; a < cols; a++ {
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(x, y int) bool {
			return posterior.At(order[x], a) > posterior.At(order[y], a)
		})
		n := topN
		if n > rows {
			n = rows
		}
		for _, i := range order[:n] {
			selected[vocab.Tokens[i]] = true
		}
	}
	return selected
}

// TokenWeights returns the smoothed global importance of every token:
// (count + alpha) / (total + alpha*V). Any alpha > 0 keeps every weight
// strictly positive, including for tokens with zero total count.
func TokenWeights(classCounts *mat.Dense, alpha float64) []float64 {
	rows, cols := classCounts.Dims()
	weights := make([]float64, rows)
	var total float64
	for i := 0; i < rows; i++ {
		for a := 0; a < cols; a++ {
			weights[i] += classCounts.At(i, a)
		}
		total += weights[i]
	}
	denom := total + alpha*float64(rows)
	for i := range weights {
		weights[i] = (weights[i] + alpha) / denom
	}
	return weights
}

// WordGivenClass returns smoothed P(token | class):
// (N_wA + beta*P_w) / (N_A + beta). For beta > 0 every entry is strictly
// inside (0,1), so its logarithm is finite.
func WordGivenClass(classCounts *mat.Dense, tokenWeights []float64, beta float64) *mat.Dense {
	rows, cols := classCounts.Dims()
	probs := mat.NewDense(rows, cols, nil)
	for a := 0; a < cols; a++ {
		var classTotal float64
		for i := 0; i < rows; i++ {
			classTotal += classCounts.At(i, a)
		}
		for i := 0; i < rows; i++ {
			probs.Set(i, a, (classCounts.At(i, a)+beta*tokenWeights[i])/(classTotal+beta))
		}
	}
	return probs
}

// WordGivenRest returns smoothed P(token | not class), the complement of
// WordGivenClass over all other classes, under the same beta smoothing.
func WordGivenRest(classCounts *mat.Dense, tokenWeights []float64, beta float64) *mat.Dense {
	rows, cols := classCounts.Dims()

	rowTotal := make([]float64, rows)
	var total float64
	for i := 0; i < rows; i++ {
		for a := 0; a < cols; a++ {
			rowTotal[i] += classCounts.At(i, a)
		}
		total += rowTotal[i]
	}

	probs := mat.NewDense(rows, cols, nil)
	for a := 0; a < cols; a++ {
		var classTotal float64
		for i := 0; i < rows; i++ {
			classTotal += classCounts.At(i, a)
		}
		restTotal := total - classTotal
		for i := 0; i < rows; i++ {
			rest := rowTotal[i] - classCounts.At(i, a)
			probs.Set(i, a, (rest+beta*tokenWeights[i])/(restTotal+beta))
		}
	}
	return probs
}

// LogRatioWeights returns the Naive Bayes weight matrix
// log(P(w|A) / P(w|notA)). A positive weight means the token indicates the
// class, a negative one that it indicates its absence.
func LogRatioWeights(inClass, inRest *mat.Dense) *mat.Dense {
	rows, cols := inClass.Dims()
	weights := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for a := 0; a < cols; a++ {
			weights.Set(i, a, math.Log(inClass.At(i, a)/inRest.At(i, a)))
		}
	}
	return weights
}
