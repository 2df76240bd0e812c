package services

import (
	"context"

	"go.uber.org/zap"

	"oleander_app_echo/internal/app"
)

// Submitter receives every accepted form payload.
type Submitter interface {
	Submit(ctx context.Context, payload app.FormData) error
}

// LogSubmitter records submissions in the application log and nothing else.
type LogSubmitter struct {
	logger *zap.Logger
}

// NewLogSubmitter returns a Submitter writing to logger.
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	return &LogSubmitter{logger: logger}
}

func (s *LogSubmitter) Submit(ctx context.Context, payload app.FormData) error {
	s.logger.Info("Form submitted",
		zap.String("name", payload.Name),
		zap.String("email", payload.Email),
		zap.String("age", payload.Age),
		zap.String("feedback", payload.Feedback),
	)
	return nil
}
