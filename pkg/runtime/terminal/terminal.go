package terminal

import (
	"io"
	"os"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal/export"

	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	engine   *insights.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine *insights.Service
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Engine == nil {
		opts.Engine = insights.NewService()
	}

	cli := &CLI{
		engine:   opts.Engine,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense-atlas",
		Short: "Spending analytics over categorized monthly expense snapshots",
	}

	cmd.AddCommand(commands.NewSummaryCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewCategoriesCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewTrendsCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewRecurringCmd(cli.engine, cli.reporter))
	cmd.AddCommand(commands.NewSubscriptionsCmd(cli.engine, cli.reporter))

	return cmd
}
