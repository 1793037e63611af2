package classifier

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"gonum.org/v1/gonum/mat"
)

// ForestConfig configures the one-vs-rest random forest scorer.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	// Ratio is the negative subsampling ratio: each class keeps all its
	// positives and ratio*|positives| randomly drawn negatives, capped at
	// the number of available negatives. Ratio <= 0 disables subsampling.
	Ratio   float64
	Seed    int64
	Workers int
}

// DefaultForestConfig returns the reference configuration.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Trees:    250,
		MaxDepth: 10,
		MinLeaf:  1,
		Ratio:    3,
		Workers:  runtime.NumCPU(),
	}
}

// ForestScores trains one binary random forest per class and returns
// softmaxed questions-by-classes scores for the test set.
//
// For class c, each training question's feature vector is its normalized-TF
// column scaled elementwise by column c of the NB weight matrix, so every
// class sees its own feature representation. Classes train independently on
// a bounded worker pool; each writes only its own output column, and every
// random draw derives from cfg.Seed, so a fixed seed reproduces the scores
// exactly.
func ForestScores(trainTF, testTF *mat.Dense, labels []int, weights *mat.Dense, index *ClassIndex, cfg ForestConfig) (*mat.Dense, error) {
	if cfg.Trees <= 0 {
		return nil, fmt.Errorf("faqrank: forest needs a positive tree count, got %d", cfg.Trees)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("faqrank: creating forest worker pool: %w", err)
	}
	defer pool.Release()

	_, nTrain := trainTF.Dims()
	_, nTest := testTF.Dims()
	columns := make([][]float64, index.Len())

	var wg sync.WaitGroup
	for c := 0; c < index.Len(); c++ {
		c := c
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			columns[c] = scoreOneClass(trainTF, testTF, labels, weights, index, c, nTrain, nTest, cfg)
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("faqrank: submitting forest task: %w", submitErr)
		}
	}
	wg.Wait()

	scores := mat.NewDense(nTest, index.Len(), nil)
	for c, col := range columns {
		for j, v := range col {
			scores.Set(j, c, v)
		}
	}
	return softmaxRows(scores), nil
}

// scoreOneClass builds the class-specific feature representation, subsamples
// negatives, trains a forest, and scores the test questions.
func scoreOneClass(trainTF, testTF *mat.Dense, labels []int, weights *mat.Dense, index *ClassIndex, c, nTrain, nTest int, cfg ForestConfig) []float64 {
	classID := index.ID(c)
	// Seeded per class id so the draws survive a relabeling of the class
	// ordering.
	rng := rand.New(rand.NewSource(cfg.Seed + int64(classID)*1000003))

	x := weightedColumns(trainTF, weights, c, nTrain)
	y := make([]float64, nTrain)
	var posIdx, negIdx []int
	for j, l := range labels {
		if l == classID {
			y[j] = 1
			posIdx = append(posIdx, j)
		} else {
			negIdx = append(negIdx, j)
		}
	}

	samples := subsampleNegatives(posIdx, negIdx, cfg.Ratio, rng)

	dim, _ := trainTF.Dims()
	mtry := int(math.Sqrt(float64(dim)))
	if mtry < 1 {
		mtry = 1
	}
	tcfg := treeConfig{maxDepth: cfg.MaxDepth, minLeaf: cfg.MinLeaf, mtry: mtry}

	trees := make([]*decisionTree, cfg.Trees)
	for t := range trees {
		boot := make([]int, len(samples))
		for k := range boot {
			boot[k] = samples[rng.Intn(len(samples))]
		}
		trees[t] = growTree(x, y, boot, tcfg, rng)
	}

	xTest := weightedColumns(testTF, weights, c, nTest)
	col := make([]float64, nTest)
	for j := 0; j < nTest; j++ {
		var sum float64
		for _, tree := range trees {
			sum += tree.predict(xTest[j])
		}
		col[j] = sum / float64(len(trees))
	}
	return col
}

// weightedColumns extracts question feature vectors: column j of tf scaled
// elementwise by column c of the NB weight matrix.
func weightedColumns(tf, weights *mat.Dense, c, n int) [][]float64 {
	dim, _ := tf.Dims()
	x := make([][]float64, n)
	for j := 0; j < n; j++ {
		v := make([]float64, dim)
		for i := 0; i < dim; i++ {
			v[i] = tf.At(i, j) * weights.At(i, c)
		}
		x[j] = v
	}
	return x
}

// subsampleNegatives keeps all positives and draws ratio*|positives|
// negatives without replacement. The draw is capped at the available
// negative count, so a misconfigured ratio can never over-draw.
func subsampleNegatives(posIdx, negIdx []int, ratio float64, rng *rand.Rand) []int {
	samples := make([]int, 0, len(posIdx)+len(negIdx))
	samples = append(samples, posIdx...)

	if ratio <= 0 {
		return append(samples, negIdx...)
	}
	want := int(ratio * float64(len(posIdx)))
	if want > len(negIdx) {
		want = len(negIdx)
	}
	for _, k := range rng.Perm(len(negIdx))[:want] {
		samples = append(samples, negIdx[k])
	}
	return samples
}
