package faqrank

import (
	"fmt"
	"log/slog"

	"github.com/faqrank/faqrank/classifier"
	"github.com/faqrank/faqrank/internal/dataset"
	"github.com/faqrank/faqrank/internal/vectorizer"
)

// Run executes the full pipeline: vocabulary and counts from the training
// table, feature selection, NB weights, the three scorers over the test
// table, their ensemble, and the rank metrics. The training table is the
// only source of vocabulary and weights; test questions are only scored.
func Run(train, test *dataset.Table, p Params) (*Result, error) {
	if train.Len() == 0 {
		return nil, fmt.Errorf("faqrank: training table is empty")
	}
	if test.Len() == 0 {
		return nil, fmt.Errorf("faqrank: test table is empty")
	}
	if p.TopN <= 0 {
		return nil, fmt.Errorf("faqrank: topN must be positive, got %d", p.TopN)
	}
	if p.Alpha <= 0 || p.Beta <= 0 {
		return nil, fmt.Errorf("faqrank: smoothing constants must be positive (alpha=%g, beta=%g)", p.Alpha, p.Beta)
	}

	trainDocs, labels := train.Docs(), train.Labels()
	classes := classifier.NewClassIndex(labels)
	slog.Debug("Building vocabulary", "questions", train.Len(), "classes", classes.Len())

	// Feature ranking runs over the full training vocabulary; everything
	// downstream uses the reduced one.
	fullVocab := vectorizer.NewVocabulary(trainDocs, nil)
	if fullVocab.Size() == 0 {
		return nil, fmt.Errorf("faqrank: training table has no tokens")
	}
	fullClassCounts := vectorizer.GroupedCountMatrix(trainDocs, labels, classes.IDs(), fullVocab)
	prior := classifier.Prior(labels, classes)
	posterior := classifier.Posterior(fullClassCounts, prior)
	selected := classifier.SelectFeatures(posterior, fullVocab, p.TopN)
	vocab := vectorizer.NewVocabulary(trainDocs, selected)
	slog.Debug("Selected features", "full", fullVocab.Size(), "selected", vocab.Size())

	trainCounts := vectorizer.CountMatrix(trainDocs, vocab)
	classCounts := vectorizer.GroupedCountMatrix(trainDocs, labels, classes.IDs(), vocab)
	trainTF := vectorizer.NormalizeColumns(trainCounts)

	tokenWeights := classifier.TokenWeights(classCounts, p.Alpha)
	nbWeights := classifier.LogRatioWeights(
		classifier.WordGivenClass(classCounts, tokenWeights, p.Beta),
		classifier.WordGivenRest(classCounts, tokenWeights, p.Beta),
	)

	testCounts := vectorizer.CountMatrix(test.Docs(), vocab)
	testTF := vectorizer.NormalizeColumns(testCounts)

	slog.Debug("Scoring with Naive Bayes")
	nb := &classifier.NaiveBayes{Weights: nbWeights, Bias: p.Bias}
	nbScores := nb.Score(testTF)

	slog.Debug("Training linear SVM", "c", p.C)
	idf := vectorizer.IDF(trainCounts)
	svm := classifier.NewLinearSVM(p.C, p.Seed)
	svm.Fit(vectorizer.TFIDF(trainTF, idf), labels, classes)
	svmScores := svm.Score(vectorizer.TFIDF(testTF, idf))

	slog.Debug("Training random forest", "trees", p.Trees, "ratio", p.Ratio, "workers", p.Workers)
	forestCfg := classifier.DefaultForestConfig()
	forestCfg.Trees = p.Trees
	forestCfg.Ratio = p.Ratio
	forestCfg.Seed = p.Seed
	forestCfg.Workers = p.Workers
	forestScores, err := classifier.ForestScores(trainTF, testTF, labels, nbWeights, classes, forestCfg)
	if err != nil {
		return nil, err
	}

	probs := classifier.Ensemble(nbScores, svmScores, forestScores)

	trueCols := make([]int, test.Len())
	for j, q := range test.Questions {
		trueCols[j] = classes.Column(q.AnswerID)
		if trueCols[j] < 0 {
			return nil, fmt.Errorf("faqrank: test question %d has answer class %d never seen in training", q.ID, q.AnswerID)
		}
	}
	ranks := Ranks(probs, trueCols)

	return &Result{
		Probs:       probs,
		Classes:     classes,
		Ranks:       ranks,
		AverageRank: AverageRank(ranks),
		TopThree:    TopThree(ranks),
	}, nil
}
