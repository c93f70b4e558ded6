package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/expense-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Engine: insights.NewService(),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
