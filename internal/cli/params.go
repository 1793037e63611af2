package cli

import (
	"github.com/faqrank/faqrank"
	"github.com/faqrank/faqrank/internal/config"
	"github.com/faqrank/faqrank/internal/dataset"
	"github.com/spf13/cobra"
)

// paramFlags carries the hyperparameter flag values of one command. Flag
// defaults mirror the reference config; a value set on the command line wins
// over the config file.
type paramFlags struct {
	configPath string
	topN       int
	alpha      float64
	beta       float64
	bias       float64
	c          float64
	trees      int
	ratio      float64
	seed       int64
	workers    int
}

func addParamFlags(cmd *cobra.Command, pf *paramFlags) {
	d := config.Default()
	cmd.Flags().StringVar(&pf.configPath, "config", "", "Path to a YAML hyperparameter file")
	cmd.Flags().IntVar(&pf.topN, "top-n", d.TopN, "Tokens kept per class during feature selection")
	cmd.Flags().Float64Var(&pf.alpha, "alpha", d.Alpha, "Smoothing for global token weights")
	cmd.Flags().Float64Var(&pf.beta, "beta", d.Beta, "Smoothing for class-conditional probabilities")
	cmd.Flags().Float64Var(&pf.bias, "bias", d.Bias, "Naive Bayes score offset")
	cmd.Flags().Float64Var(&pf.c, "c", d.C, "SVM inverse regularization strength")
	cmd.Flags().IntVar(&pf.trees, "trees", d.Trees, "Forest size per class")
	cmd.Flags().Float64Var(&pf.ratio, "ratio", d.Ratio, "Negative subsampling ratio (<= 0 keeps all)")
	cmd.Flags().Int64Var(&pf.seed, "seed", d.Seed, "Random seed for SVM and forest")
	cmd.Flags().IntVar(&pf.workers, "workers", d.Workers, "Forest training workers")
}

// resolve merges the config file (if any) with the flags that were set
// explicitly and returns the final pipeline parameters.
func (pf *paramFlags) resolve(cmd *cobra.Command) (faqrank.Params, error) {
	c, err := config.Load(pf.configPath)
	if err != nil {
		return faqrank.Params{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("top-n") {
		c.TopN = pf.topN
	}
	if flags.Changed("alpha") {
		c.Alpha = pf.alpha
	}
	if flags.Changed("beta") {
		c.Beta = pf.beta
	}
	if flags.Changed("bias") {
		c.Bias = pf.bias
	}
	if flags.Changed("c") {
		c.C = pf.c
	}
	if flags.Changed("trees") {
		c.Trees = pf.trees
	}
	if flags.Changed("ratio") {
		c.Ratio = pf.ratio
	}
	if flags.Changed("seed") {
		c.Seed = pf.seed
	}
	if flags.Changed("workers") {
		c.Workers = pf.workers
	}

	return faqrank.Params{
		TopN:    c.TopN,
		Alpha:   c.Alpha,
		Beta:    c.Beta,
		Bias:    c.Bias,
		C:       c.C,
		Trees:   c.Trees,
		Ratio:   c.Ratio,
		Seed:    c.Seed,
		Workers: c.Workers,
	}, nil
}

func loadTables(trainPath, testPath string) (*dataset.Table, *dataset.Table, error) {
	train, err := dataset.Load(trainPath)
	if err != nil {
		return nil, nil, err
	}
	test, err := dataset.Load(testPath)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}
