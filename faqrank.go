// Package faqrank ranks incoming questions against a fixed catalog of
// question/answer pairs. Each pair is one answer class; three base scorers
// (Naive Bayes likelihood ratios, a one-vs-rest linear SVM on TF-IDF, and a
// one-vs-rest random forest on NB-weighted features) are averaged into an
// ensemble whose ranking quality is reported as Average Rank and Top-3
// accuracy.
package faqrank

import (
	"runtime"

	"github.com/faqrank/faqrank/classifier"
	"gonum.org/v1/gonum/mat"
)

// Params are the pipeline hyperparameters. They are dataset-specific; the
// defaults are the reference tuning and need re-tuning for a new catalog.
type Params struct {
	// TopN tokens are kept per class during feature selection.
	TopN int
	// Alpha smooths the global token weights.
	Alpha float64
	// Beta smooths the class-conditional token probabilities.
	Beta float64
	// Bias offsets the Naive Bayes scores before softmax.
	Bias float64
	// C is the SVM inverse regularization strength.
	C float64
	// Trees is the forest size per class.
	Trees int
	// Ratio is the negative subsampling ratio for the forest; <= 0 keeps
	// all negatives.
	Ratio float64
	// Seed drives every random draw in the run.
	Seed int64
	// Workers bounds the per-class forest training pool.
	Workers int
}

// DefaultParams returns the reference hyperparameters.
func DefaultParams() Params {
	return Params{
		TopN:    19,
		Alpha:   0.0001,
		Beta:    0.0001,
		C:       1.0,
		Trees:   250,
		Ratio:   3,
		Seed:    1,
		Workers: runtime.NumCPU(),
	}
}

// Result holds the ensemble output for one run.
type Result struct {
	// Probs is the questions-by-classes ensemble distribution; every row
	// sums to 1. Columns are laid out by Classes.
	Probs *mat.Dense
	// Classes maps answer-class ids to Probs columns.
	Classes *classifier.ClassIndex
	// Ranks holds, per test question, the 1-based position of its true
	// class when classes are sorted by descending ensemble score.
	Ranks []int
	// AverageRank is the floored mean of Ranks.
	AverageRank float64
	// TopThree is the fraction of questions ranked in the top 3, rounded
	// to 3 decimal places.
	TopThree float64
}
