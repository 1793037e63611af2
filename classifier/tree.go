package classifier

import (
	"math/rand"
	"sort"
)

// decisionTree is a binary CART tree over dense feature vectors, split by
// gini impurity. Leaves hold the positive-class fraction of their training
// samples, so the forest gets a continuous score rather than a vote.
type decisionTree struct {
	root *treeNode
}

type treeNode struct {
	feature int
	thresh  float64
	left    *treeNode
	right   *treeNode
	leaf    bool
	prob    float64
}

type treeConfig struct {
	maxDepth int
	minLeaf  int
	mtry     int // features considered per split
}

func growTree(x [][]float64, y []float64, samples []int, cfg treeConfig, rng *rand.Rand) *decisionTree {
	return &decisionTree{root: growNode(x, y, samples, cfg.maxDepth, cfg, rng)}
}

func growNode(x [][]float64, y []float64, samples []int, depth int, cfg treeConfig, rng *rand.Rand) *treeNode {
	pos := 0.0
	for _, j := range samples {
		pos += y[j]
	}
	prob := pos / float64(len(samples))

	if depth <= 0 || len(samples) < 2*cfg.minLeaf || prob == 0 || prob == 1 {
		return &treeNode{leaf: true, prob: prob}
	}

	feature, thresh, ok := bestSplit(x, y, samples, cfg, rng)
	if !ok {
		return &treeNode{leaf: true, prob: prob}
	}

	var left, right []int
	for _, j := range samples {
		if x[j][feature] <= thresh {
			left = append(left, j)
		} else {
			right = append(right, j)
		}
	}
	return &treeNode{
		feature: feature,
		thresh:  thresh,
		left:    growNode(x, y, left, depth-1, cfg, rng),
		right:   growNode(x, y, right, depth-1, cfg, rng),
	}
}

// bestSplit scans mtry randomly chosen features for the threshold minimizing
// weighted gini impurity. Returns ok=false when no split separates the node.
func bestSplit(x [][]float64, y []float64, samples []int, cfg treeConfig, rng *rand.Rand) (int, float64, bool) {
	dim := len(x[samples[0]])
	bestGini := gini(y, samples) - 1e-12
	bestFeature, bestThresh := -1, 0.0

	order := make([]int, len(samples))
	for _, f := range rng.Perm(dim)[:cfg.mtry] {
		copy(order, samples)
		sort.SliceStable(order, func(a, b int) bool {
			return x[order[a]][f] < x[order[b]][f]
		})

		total := float64(len(order))
		var totalPos float64
		for _, j := range order {
			totalPos += y[j]
		}

		var leftN, leftPos float64
		for k := 0; k < len(order)-1; k++ {
			leftN++
			leftPos += y[order[k]]

			v, next := x[order[k]][f], x[order[k+1]][f]
			if v == next {
				continue
			}
			if int(leftN) < cfg.minLeaf || len(order)-int(leftN) < cfg.minLeaf {
				continue
			}

			rightN := total - leftN
			rightPos := totalPos - leftPos
			g := (leftN*giniBinary(leftPos/leftN) + rightN*giniBinary(rightPos/rightN)) / total
			if g < bestGini {
				bestGini = g
				bestFeature = f
				bestThresh = (v + next) / 2
			}
		}
	}
	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThresh, true
}

func giniBinary(p float64) float64 {
	return 2 * p * (1 - p)
}

func gini(y []float64, samples []int) float64 {
	var pos float64
	for _, j := range samples {
		pos += y[j]
	}
	return giniBinary(pos / float64(len(samples)))
}

func (t *decisionTree) predict(features []float64) float64 {
	n := t.root
	for !n.leaf {
		if features[n.feature] <= n.thresh {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.prob
}
