package classifier

import (
	"gonum.org/v1/gonum/mat"
)

// Ensemble returns the elementwise arithmetic mean of the given score
// matrices. Each input row is a probability distribution, so the mean of the
// rows is one too; no re-normalization happens here.
func Ensemble(scores ...*mat.Dense) *mat.Dense {
	rows, cols := scores[0].Dims()
	out := mat.NewDense(rows, cols, nil)
	for _, m := range scores {
		out.Add(out, m)
	}
	out.Scale(1/float64(len(scores)), out)
	return out
}
