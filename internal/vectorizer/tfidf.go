package vectorizer

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// IDF computes the inverse document frequency of every token from a training
// count matrix: log(nDocs / df). Every vocabulary token appears in at least
// one training question, so df is never zero for a training-derived
// vocabulary; a zero-df row (possible only with a foreign vocabulary) gets
// weight 0 rather than a division by zero.
func IDF(counts *mat.Dense) []float64 {
	rows, cols := counts.Dims()
	idf := make([]float64, rows)
	for i := 0; i < rows; i++ {
		df := 0
		for j := 0; j < cols; j++ {
			if counts.At(i, j) > 0 {
				df++
			}
		}
		if df > 0 {
			idf[i] = math.Log(float64(cols) / float64(df))
		}
	}
	return idf
}

// TFIDF scales each token row of a normalized TF matrix by its IDF weight.
func TFIDF(tf *mat.Dense, idf []float64) *mat.Dense {
	rows, cols := tf.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, tf.At(i, j)*idf[i])
		}
	}
	return out
}
