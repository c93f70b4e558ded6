package commands

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/fin-tools/expense-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type TrendsCmd struct {
	inputPath string
	top       int
	engine    *insights.Service
	reporter  *export.Reporter
}

func NewTrendsCmd(engine *insights.Service, reporter *export.Reporter) *cobra.Command {
	tc := &TrendsCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show spending trends for the top categories",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.inputPath, "input", "", "Path to the analysis snapshot JSON file")
	cmd.Flags().IntVar(&tc.top, "top", 5, "Number of top categories to chart individually")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (tc *TrendsCmd) run(cmd *cobra.Command, args []string) error {
	res, err := snapshot.Load(tc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	labels := make([]string, 0, len(res.MonthlyExpenses))
	for _, m := range insights.Chronological(res.MonthlyExpenses) {
		labels = append(labels, m.Month)
	}

	trends := tc.engine.CategoryTrends(cmd.Context(), res, tc.top)
	return tc.reporter.Trends(labels, trends)
}
