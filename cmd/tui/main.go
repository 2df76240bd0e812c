package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"oleander_app_echo/internal/config"
	"oleander_app_echo/internal/services"
	"oleander_app_echo/internal/tui"
)

func main() {
	envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to bubbletea; logs only go to a file when asked.
	logger := zap.NewNop()
	if path := os.Getenv("TUI_LOG_FILE"); path != "" {
		logger, err = fileLogger(path, cfg.LogLevel)
		if err != nil {
			log.Fatal(err)
		}
	}
	defer func() { _ = logger.Sync() }()
	config.ReportDotEnv(logger, envErr)

	model := tui.New(cfg.ValidatorOptions(), services.NewLogSubmitter(logger))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fileLogger(path, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
