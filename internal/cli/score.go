package cli

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/faqrank/faqrank"
	"github.com/spf13/cobra"
)

func (c *CLI) newScoreCommand() *cobra.Command {
	var trainPath, testPath string
	var topK int
	var pf paramFlags

	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Print the top-ranked answer classes for every test question",
		Example: `  faqrank score --train train.csv --test test.csv --top 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}
			train, test, err := loadTables(trainPath, testPath)
			if err != nil {
				return err
			}

			slog.Info("Scoring", "test", test.Len(), "top", topK)
			result, err := faqrank.Run(train, test, params)
			if err != nil {
				return err
			}

			numClasses := result.Classes.Len()
			if topK > numClasses {
				topK = numClasses
			}
			order := make([]int, numClasses)
			for j, q := range test.Questions {
				for col := range order {
					order[col] = col
				}
				sort.SliceStable(order, func(a, b int) bool {
					return result.Probs.At(j, order[a]) > result.Probs.At(j, order[b])
				})

				fmt.Printf("question %d:", q.ID)
				for _, col := range order[:topK] {
					fmt.Printf(" %d=%.4f", result.Classes.ID(col), result.Probs.At(j, col))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trainPath, "train", "train.csv", "Path to the training question table")
	cmd.Flags().StringVar(&testPath, "test", "test.csv", "Path to the test question table")
	cmd.Flags().IntVar(&topK, "top", 3, "Number of classes to print per question")
	addParamFlags(cmd, &pf)
	return cmd
}
