package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/expense-atlas/pkg/server"
	"github.com/fin-tools/expense-atlas/pkg/services/config"
	"github.com/fin-tools/expense-atlas/pkg/services/insights"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the expense-atlas report API",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the server config YAML (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Int("default_top_n", cfg.DefaultTopN).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr,
		ShutdownTimeout: cfg.ShutdownTimeout,
		DefaultTopN:     cfg.DefaultTopN,
		Dependencies: server.Dependencies{
			Engine: insights.NewService(),
		},
	})

	return api.Start()
}
