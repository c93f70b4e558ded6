package commands

import (
	"fmt"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/fin-tools/expense-atlas/pkg/store/snapshot"
	"github.com/spf13/cobra"
)

type SubscriptionsCmd struct {
	inputPath string
	top       int
	engine    *insights.Service
	reporter  *export.Reporter
}

func NewSubscriptionsCmd(engine *insights.Service, reporter *export.Reporter) *cobra.Command {
	sc := &SubscriptionsCmd{engine: engine, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "List fixed-amount charges seen at least twice",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.inputPath, "input", "", "Path to the analysis snapshot JSON file")
	cmd.Flags().IntVar(&sc.top, "top", 10, "Maximum number of subscriptions to list")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (sc *SubscriptionsCmd) run(cmd *cobra.Command, args []string) error {
	res, err := snapshot.Load(sc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	subs := sc.engine.IdenticalRecurring(cmd.Context(), res, sc.top)
	return sc.reporter.Subscriptions(subs)
}
