package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faqrank/faqrank"
	"github.com/spf13/cobra"
)

func (c *CLI) newEvaluateCommand() *cobra.Command {
	var trainPath, testPath string
	var pf paramFlags

	cmd := &cobra.Command{
		Use:     "evaluate",
		Short:   "Score a test set against the training catalog and report rank metrics",
		Example: `  faqrank evaluate --train train.csv --test test.csv --config params.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			train, test, err := loadTables(trainPath, testPath)
			if err != nil {
				return err
			}

			slog.Info("Evaluating", "train", train.Len(), "test", test.Len(), "seed", params.Seed)
			start := time.Now()
			result, err := faqrank.Run(train, test, params)
			if err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))

			fmt.Printf("Questions scored: %d across %d classes\n", test.Len(), result.Classes.Len())
			fmt.Printf("Average rank: %.0f\n", result.AverageRank)
			fmt.Printf("Top-3 accuracy: %.3f\n", result.TopThree)
			return nil
		},
	}

	cmd.Flags().StringVar(&trainPath, "train", "train.csv", "Path to the training question table")
	cmd.Flags().StringVar(&testPath, "test", "test.csv", "Path to the test question table")
	addParamFlags(cmd, &pf)
	return cmd
}
