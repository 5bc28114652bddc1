package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todoterm/internal/api"
	"github.com/idilsaglam/todoterm/internal/app"
	"github.com/idilsaglam/todoterm/internal/config"
	"github.com/idilsaglam/todoterm/internal/store"
	"github.com/idilsaglam/todoterm/internal/ui"
)

var (
	flagConfig   string
	flagAPI      string
	flagUser     int
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "todoterm",
	Short:        "Browse and edit a remote todo list from the terminal",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to todoterm.toml")
	rootCmd.Flags().StringVar(&flagAPI, "api", "", "base URL of the todo service")
	rootCmd.Flags().IntVar(&flagUser, "user", 0, "user id for new todos")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	// Optional .env next to the binary's working dir; missing is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagAPI != "" {
		cfg.APIBaseURL = flagAPI
	}
	if flagUser != 0 {
		cfg.UserID = flagUser
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "todoterm",
	})

	client := api.New(cfg.APIBaseURL, time.Duration(cfg.TimeoutSecs)*time.Second, logger)
	a := app.New(store.New(), client, cfg.PageSize, logger)

	return ui.Run(a, cfg.UserID, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
