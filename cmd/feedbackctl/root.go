package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/config"
	"oleander_app_echo/internal/prompt"
	"oleander_app_echo/internal/services"
)

// errInvalidPayload marks a run whose payload failed validation. The
// messages have already been printed.
var errInvalidPayload = errors.New("payload is invalid")

const (
	outputText = "text"
	outputJSON = "json"
)

// cli carries the dependencies shared by every subcommand.
type cli struct {
	cfg       config.Config
	logger    *zap.Logger
	submitter services.Submitter
	driver    prompt.Driver

	strictAge bool
	output    string
}

func newRootCmd(cfg config.Config, logger *zap.Logger, submitter services.Submitter, driver prompt.Driver) *cobra.Command {
	c := &cli{
		cfg:       cfg,
		logger:    logger,
		submitter: submitter,
		driver:    driver,
	}

	root := &cobra.Command{
		Use:           "feedbackctl",
		Short:         "Validate and submit Oleander feedback payloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.output {
			case outputText, outputJSON:
				return nil
			}
			return fmt.Errorf("unsupported output %q (want %s or %s)", c.output, outputText, outputJSON)
		},
	}

	root.PersistentFlags().BoolVar(&c.strictAge, "strict-age", false, "accept only whole numbers of at least 1 as age")
	root.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format: text or json")

	root.AddCommand(c.newValidateCmd(), c.newPromptCmd())
	return root
}

// options resolves the validator settings; the flag wins over AGE_VALIDATION.
func (c *cli) options() app.Options {
	opts := c.cfg.ValidatorOptions()
	if c.strictAge {
		opts.Age = app.AgeStrict
	}
	return opts
}

// handshake runs a payload through the same update sequence as the web and
// terminal front ends: every field is edited, then the form is submitted.
func handshake(form app.FormData, opts app.Options) (app.State, app.Effect) {
	state, _ := app.UpdateWith(app.NewState(), app.NavigateTo{Target: app.ViewForm}, opts)
	for _, f := range app.Fields {
		state, _ = app.UpdateWith(state, app.FieldChanged{Field: f, Value: form.Get(f)}, opts)
	}
	return app.UpdateWith(state, app.SubmitForm{}, opts)
}
