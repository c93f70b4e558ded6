package commands

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/fin-tools/expense-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type RecurringCmd struct {
	inputPath string
	top       int
	engine    *insights.Service
	reporter  *export.Reporter
}

func NewRecurringCmd(engine *insights.Service, reporter *export.Reporter) *cobra.Command {
	rc := &RecurringCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "List merchants that charge repeatedly, regardless of amount",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.inputPath, "input", "", "Path to the analysis snapshot JSON file")
	cmd.Flags().IntVar(&rc.top, "top", 10, "Maximum number of merchants to list")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *RecurringCmd) run(cmd *cobra.Command, args []string) error {
	res, err := snapshot.Load(rc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	recurring := rc.engine.TopRecurring(cmd.Context(), res, rc.top)
	return rc.reporter.Recurring(recurring)
}
