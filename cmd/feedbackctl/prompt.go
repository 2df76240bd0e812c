package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/prompt"
)

func (c *cli) newPromptCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the feedback form interactively",
		Long: `Asks for each field in turn, rejecting answers that fail the form rules,
then submits the payload and prints the confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPrompt(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML payload used as default answers")
	return cmd
}

func (c *cli) runPrompt(cmd *cobra.Command, file string) error {
	defaults, err := loadDefaults(file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := c.options()
	form, err := prompt.Collect(cmd.Context(), c.driver, defaults, opts)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			c.logger.Info("Prompt aborted")
		}
		return err
	}

	state, effect := handshake(form, opts)
	if submitted, ok := effect.(app.Submitted); ok {
		if err := c.submitter.Submit(cmd.Context(), submitted.Payload); err != nil {
			c.logger.Error("Failed to submit payload", zap.Error(err))
			return fmt.Errorf("submit: %w", err)
		}
	}

	if err := writeResult(cmd.OutOrStdout(), c.output, state); err != nil {
		return err
	}
	if len(state.Errors) > 0 {
		return errInvalidPayload
	}
	return nil
}
