// Package classifier implements the feature weighting engine and the three
// base scorers (Naive Bayes, one-vs-rest linear SVM, one-vs-rest random
// forest) plus their ensemble. Every score matrix is questions-by-classes
// with columns laid out by a shared ClassIndex.
package classifier

import "sort"

// ClassIndex is the explicit mapping between answer-class ids and matrix
// columns. All matrices in one run must be built against the same index;
// carrying it alongside the matrices is what keeps column positions from
// silently diverging between the scorers and the evaluator.
type ClassIndex struct {
	ids []int
	col map[int]int
}

// NewClassIndex builds an index over the distinct values of labels, sorted
// ascending.
func NewClassIndex(labels []int) *ClassIndex {
	seen := make(map[int]bool)
	var ids []int
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			ids = append(ids, l)
		}
	}
	sort.Ints(ids)

	col := make(map[int]int, len(ids))
	for c, id := range ids {
		col[id] = c
	}
	return &ClassIndex{ids: ids, col: col}
}

// Len returns the number of classes.
func (ix *ClassIndex) Len() int {
	return len(ix.ids)
}

// Column returns the matrix column for a class id, or -1 if the id is
// unknown.
func (ix *ClassIndex) Column(classID int) int {
	if c, ok := ix.col[classID]; ok {
		return c
	}
	return -1
}

// ID returns the class id stored at the given column.
func (ix *ClassIndex) ID(col int) int {
	return ix.ids[col]
}

// IDs returns the class ids in column order.
func (ix *ClassIndex) IDs() []int {
	out := make([]int, len(ix.ids))
	copy(out, ix.ids)
	return out
}
