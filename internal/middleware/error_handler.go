package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"oleander_app_echo/web/components"
)

// CustomErrorHandler creates a custom error handler for Echo
func CustomErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			logger.Error("Error after response was committed", zap.Error(err))
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		// Check if it's an Echo HTTPError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code

			// Try to extract message from HTTPError
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}

			// Set title and default message if no custom message provided
			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
				if errorMessage == "" {
					errorMessage = "The page you're looking for doesn't exist."
				}
			case http.StatusMethodNotAllowed:
				errorTitle = "Method Not Allowed"
				if errorMessage == "" {
					errorMessage = "This action is not available here."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" {
					errorMessage = "The request could not be processed."
				}
			default:
				if code < http.StatusInternalServerError {
					errorTitle = http.StatusText(code)
				}
				if errorMessage == "" || code >= http.StatusInternalServerError {
					errorMessage = "Something went wrong. Please try again later."
				}
			}
		} else {
			// Non-HTTPError, use default
			errorMessage = "Something went wrong. Please try again later."
		}

		if code >= http.StatusInternalServerError {
			logger.Error("Request failed", zap.Error(err), zap.String("path", c.Request().URL.Path))
		} else {
			logger.Debug("Request rejected", zap.Error(err), zap.Int("status", code))
		}

		props := components.ErrorPageProps{
			Title:        errorTitle,
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)

		if c.Request().Method == http.MethodHead {
			return
		}
		if renderErr := components.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
			// Headers are already out; all that is left is logging.
			logger.Error("Failed to render error page", zap.Error(fmt.Errorf("render: %w", renderErr)))
		}
	}
}
