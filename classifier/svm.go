package classifier

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// LinearSVM is a one-vs-rest linear classifier trained with hinge-loss SGD
// (Pegasos-style schedule). It is meant to be fit on TF-IDF features; the
// per-class decision values are softmaxed into a probability distribution at
// scoring time. Training is deterministic for a fixed Seed.
type LinearSVM struct {
	C      float64 // inverse regularization strength
	Epochs int
	Seed   int64

	index     *ClassIndex
	coef      [][]float64 // classes x tokens
	intercept []float64
}

// NewLinearSVM returns an untrained model with the given regularization
// strength and seed.
func NewLinearSVM(c float64, seed int64) *LinearSVM {
	if c <= 0 {
		c = 1.0
	}
	return &LinearSVM{C: c, Epochs: 20, Seed: seed}
}

// Fit trains one binary hinge-loss classifier per class of the index.
// x is tokens-by-questions; labels[j] is the answer-class id of column j.
func (s *LinearSVM) Fit(x *mat.Dense, labels []int, index *ClassIndex) {
	dim, n := x.Dims()
	s.index = index
	s.coef = make([][]float64, index.Len())
	s.intercept = make([]float64, index.Len())

	lambda := 1.0 / (s.C * float64(n))

	for c := 0; c < index.Len(); c++ {
		classID := index.ID(c)
		y := make([]float64, n)
		for j, l := range labels {
			if l == classID {
				y[j] = 1
			} else {
				y[j] = -1
			}
		}
		// Seed per class id, not per column, so relabeling the class
		// ordering cannot change any class's training draws.
		s.coef[c], s.intercept[c] = trainHinge(x, y, dim, n, lambda, s.Epochs, s.Seed+int64(classID))
	}
}

func trainHinge(x *mat.Dense, y []float64, dim, n int, lambda float64, epochs int, seed int64) ([]float64, float64) {
	rng := rand.New(rand.NewSource(seed))
	w := make([]float64, dim)
	var b float64
	t := 0

	for epoch := 0; epoch < epochs; epoch++ {
		for _, j := range rng.Perm(n) {
			t++
			eta := 1.0 / (lambda * float64(t))

			var dot float64
			for i := 0; i < dim; i++ {
				dot += w[i] * x.At(i, j)
			}
			margin := y[j] * (dot + b)

			shrink := 1 - eta*lambda
			for i := range w {
				w[i] *= shrink
			}
			if margin < 1 {
				step := eta * y[j]
				for i := 0; i < dim; i++ {
					w[i] += step * x.At(i, j)
				}
				b += step
			}
		}
	}
	return w, b
}

// Score returns softmaxed questions-by-classes decision values for
// tokens-by-questions features built with the training vocabulary.
func (s *LinearSVM) Score(x *mat.Dense) *mat.Dense {
	dim, n := x.Dims()
	scores := mat.NewDense(n, s.index.Len(), nil)
	for j := 0; j < n; j++ {
		for c := range s.coef {
			var dot float64
			for i := 0; i < dim; i++ {
				dot += s.coef[c][i] * x.At(i, j)
			}
			scores.Set(j, c, dot+s.intercept[c])
		}
	}
	return softmaxRows(scores)
}
