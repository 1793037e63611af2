package classifier

import (
	"math/rand"
	"testing"

	"github.com/faqrank/faqrank/internal/vectorizer"
	"gonum.org/v1/gonum/mat"
)

func forestFixture(t *testing.T) (*mat.Dense, *mat.Dense, *mat.Dense, *ClassIndex) {
	t.Helper()
	vocab := vectorizer.NewVocabulary(toyDocs, nil)
	index := NewClassIndex(toyLabels)
	classCounts := vectorizer.GroupedCountMatrix(toyDocs, toyLabels, index.IDs(), vocab)
	tw := TokenWeights(classCounts, 0.0001)
	weights := LogRatioWeights(WordGivenClass(classCounts, tw, 0.0001), WordGivenRest(classCounts, tw, 0.0001))

	trainTF := vectorizer.NormalizeColumns(vectorizer.CountMatrix(toyDocs, vocab))
	test := [][]string{
		{"reset", "password"},
		{"billing", "invoice"},
	}
	testTF := vectorizer.NormalizeColumns(vectorizer.CountMatrix(test, vocab))
	return trainTF, testTF, weights, index
}

func smallForestConfig() ForestConfig {
	cfg := DefaultForestConfig()
	cfg.Trees = 20
	cfg.Seed = 42
	cfg.Workers = 2
	return cfg
}

func TestForestScoresToySet(t *testing.T) {
	trainTF, testTF, weights, index := forestFixture(t)

	scores, err := ForestScores(trainTF, testTF, toyLabels, weights, index, smallForestConfig())
	if err != nil {
		t.Fatalf("ForestScores: %v", err)
	}

	rowSumsToOne(t, scores, "forest")
	if scores.At(0, index.Column(10)) <= scores.At(0, index.Column(20)) {
		t.Error("reset/password question should score class 10 highest")
	}
	if scores.At(1, index.Column(20)) <= scores.At(1, index.Column(10)) {
		t.Error("billing/invoice question should score class 20 highest")
	}
}

func TestForestDeterministicUnderSeed(t *testing.T) {
	trainTF, testTF, weights, index := forestFixture(t)
	cfg := smallForestConfig()

	a, err := ForestScores(trainTF, testTF, toyLabels, weights, index, cfg)
	if err != nil {
		t.Fatalf("ForestScores: %v", err)
	}
	b, err := ForestScores(trainTF, testTF, toyLabels, weights, index, cfg)
	if err != nil {
		t.Fatalf("ForestScores: %v", err)
	}
	if !mat.Equal(a, b) {
		t.Error("same seed should reproduce identical forest scores")
	}
}

func TestForestRejectsZeroTrees(t *testing.T) {
	trainTF, testTF, weights, index := forestFixture(t)
	cfg := smallForestConfig()
	cfg.Trees = 0

	if _, err := ForestScores(trainTF, testTF, toyLabels, weights, index, cfg); err == nil {
		t.Error("expected error for zero tree count")
	}
}

func TestSubsampleNegativesCapsDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := []int{0, 1, 2, 3}
	neg := []int{4, 5, 6}

	// ratio*|pos| = 12 but only 3 negatives exist: the draw must cap.
	samples := subsampleNegatives(pos, neg, 3, rng)
	if len(samples) != len(pos)+len(neg) {
		t.Errorf("got %d samples, want %d", len(samples), len(pos)+len(neg))
	}
}

func TestSubsampleNegativesDisabled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := []int{0}
	neg := []int{1, 2, 3, 4, 5}

	samples := subsampleNegatives(pos, neg, 0, rng)
	if len(samples) != 6 {
		t.Errorf("ratio <= 0 should keep all data, got %d of 6", len(samples))
	}
}

func TestSubsampleNegativesRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pos := []int{0, 1}
	neg := []int{2, 3, 4, 5, 6, 7, 8, 9}

	samples := subsampleNegatives(pos, neg, 2, rng)
	if len(samples) != 6 {
		t.Errorf("got %d samples, want 2 positives + 4 negatives", len(samples))
	}
	seen := make(map[int]bool)
	for _, s := range samples {
		if seen[s] {
			t.Errorf("sample %d drawn twice; draws must be without replacement", s)
		}
		seen[s] = true
	}
}
