package vectorizer

import (
	"gonum.org/v1/gonum/mat"
)

// CountMatrix returns a tokens-by-questions occurrence count matrix. Column j
// holds the token counts of docs[j]. Tokens outside the vocabulary contribute
// nothing; a question with no recognized tokens yields an all-zero column.
func CountMatrix(docs [][]string, vocab *Vocabulary) *mat.Dense {
	counts := mat.NewDense(vocab.Size(), len(docs), nil)
	for j, doc := range docs {
		for _, tok := range doc {
			if id := vocab.ID(tok); id >= 0 {
				counts.Set(id, j, counts.At(id, j)+1)
			}
		}
	}
	return counts
}

// GroupedCountMatrix returns a tokens-by-groups matrix where column k
// aggregates the token counts of every doc whose label equals keys[k].
// Labels absent from keys are dropped.
func GroupedCountMatrix(docs [][]string, labels []int, keys []int, vocab *Vocabulary) *mat.Dense {
	col := make(map[int]int, len(keys))
	for k, key := range keys {
		col[key] = k
	}
	counts := mat.NewDense(vocab.Size(), len(keys), nil)
	for j, doc := range docs {
		k, ok := col[labels[j]]
		if !ok {
			continue
		}
		for _, tok := range doc {
			if id := vocab.ID(tok); id >= 0 {
				counts.Set(id, k, counts.At(id, k)+1)
			}
		}
	}
	return counts
}

// NormalizeColumns L1-normalizes each column of counts so a question's feature
// vector sums to 1 regardless of its length. All-zero columns stay all-zero.
func NormalizeColumns(counts *mat.Dense) *mat.Dense {
	rows, cols := counts.Dims()
	tf := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		var total float64
		for i := 0; i < rows; i++ {
			total += counts.At(i, j)
		}
		if total == 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			tf.Set(i, j, counts.At(i, j)/total)
		}
	}
	return tf
}
