package commands

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/fin-tools/expense-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	inputPath string
	engine    *insights.Service
	reporter  *export.Reporter
}

func NewSummaryCmd(engine *insights.Service, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline numbers for an analysis snapshot",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.inputPath, "input", "", "Path to the analysis snapshot JSON file")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	res, err := snapshot.Load(sc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	return sc.reporter.Summary(sc.engine.Summary(cmd.Context(), res))
}
