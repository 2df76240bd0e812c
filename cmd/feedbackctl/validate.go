package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/payload"
)

type validateFlags struct {
	file   string
	values app.FormData
}

func (c *cli) newValidateCmd() *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a payload against the form rules",
		Long: `Validates a feedback payload given as flags, a YAML file, or both.
Flags override values read from --file. Exits with status 1 when the payload
is invalid.`,
		Example: `  feedbackctl validate --name Jane --email jane@example.com --age 30 --feedback "Great!"
  feedbackctl validate --file payload.yaml --strict-age -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "YAML payload file (- for stdin)")
	cmd.Flags().StringVar(&flags.values.Name, "name", "", "name")
	cmd.Flags().StringVar(&flags.values.Email, "email", "", "email address")
	cmd.Flags().StringVar(&flags.values.Age, "age", "", "age")
	cmd.Flags().StringVar(&flags.values.Feedback, "feedback", "", "feedback message")
	return cmd
}

func (c *cli) runValidate(cmd *cobra.Command, flags validateFlags) error {
	form := app.FormData{}
	if flags.file != "" {
		loaded, err := payload.LoadFile(flags.file, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("load %s: %w", flags.file, err)
		}
		form = loaded
	}
	for _, f := range app.Fields {
		if cmd.Flags().Changed(string(f)) {
			form.Set(f, flags.values.Get(f))
		}
	}

	state, _ := handshake(form, c.options())
	c.logger.Debug("Payload validated",
		zap.Bool("valid", len(state.Errors) == 0),
		zap.Int("errors", len(state.Errors)),
	)

	if err := writeResult(cmd.OutOrStdout(), c.output, state); err != nil {
		return err
	}
	if len(state.Errors) > 0 {
		return errInvalidPayload
	}
	return nil
}
