package classifier

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func softmax(logits []float64) []float64 {
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}
	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// softmaxRows turns every row of a raw score matrix into a probability
// distribution. The row max is subtracted before exponentiating, so large SVM
// decision values and NB log-weighted sums stay finite.
func softmaxRows(scores *mat.Dense) *mat.Dense {
	rows, cols := scores.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		out.SetRow(i, softmax(scores.RawRowView(i)))
	}
	return out
}
