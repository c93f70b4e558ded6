package commands

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/fin-tools/expense-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type CategoriesCmd struct {
	inputPath string
	month     string
	engine    *insights.Service
	reporter  *export.Reporter
}

func NewCategoriesCmd(engine *insights.Service, reporter *export.Reporter) *cobra.Command {
	cc := &CategoriesCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Rank categories by share of spend",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.inputPath, "input", "", "Path to the analysis snapshot JSON file")
	cmd.Flags().StringVar(&cc.month, "month", "", "Month label to restrict to (e.g. \"Dec 2025\"); whole period when omitted")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (cc *CategoriesCmd) run(cmd *cobra.Command, args []string) error {
	res, err := snapshot.Load(cc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	rows := cc.engine.CategoryBreakdown(cmd.Context(), res, cc.month)
	return cc.reporter.PercentageRows(rows)
}
