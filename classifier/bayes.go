package classifier

import (
	"gonum.org/v1/gonum/mat"
)

// NaiveBayes scores questions with a learned log-likelihood-ratio weight
// matrix. There is no training step here: the weights from LogRatioWeights
// are the whole model.
type NaiveBayes struct {
	Weights *mat.Dense // tokens x classes
	Bias    float64
}

// Score returns a questions-by-classes probability matrix: each question's
// normalized term frequencies dotted with the weight matrix, offset by the
// bias term, then softmaxed per question. tf is tokens-by-questions.
func (nb *NaiveBayes) Score(tf *mat.Dense) *mat.Dense {
	var scores mat.Dense
	scores.Mul(tf.T(), nb.Weights)
	if nb.Bias != 0 {
		rows, cols := scores.Dims()
		for i := 0; i < rows; i++ {
			for a := 0; a < cols; a++ {
				scores.Set(i, a, scores.At(i, a)+nb.Bias)
			}
		}
	}
	return softmaxRows(&scores)
}
