// Command feedbackctl checks feedback payloads against the form rules
// without any UI, either from flags and YAML files or from interactive
// prompts.
package main

import (
	"errors"
	"fmt"
	"os"

	"oleander_app_echo/internal/config"
	"oleander_app_echo/internal/prompt"
	"oleander_app_echo/internal/services"
)

func main() {
	envErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, err := services.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()
	config.ReportDotEnv(logger, envErr)

	root := newRootCmd(cfg, logger, services.NewLogSubmitter(logger), prompt.NewSurveyDriver())
	if err := root.Execute(); err != nil {
		if errors.Is(err, errInvalidPayload) {
			_ = logger.Sync()
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		_ = logger.Sync()
		os.Exit(2)
	}
}
