package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/octobees/portfolio-contact/api/internal/middleware"
)

// ErrorHandler renders every error that reaches echo as a {message} body.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := MessageInternalError

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if text, ok := he.Message.(string); ok && text != "" {
				message = text
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			log.WithError(err).WithField("request_id", middleware.RequestIDFromContext(c)).Error("unhandled error")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = Error(c, status, message)
		}
		if writeErr != nil {
			log.WithError(writeErr).Warn("write error response")
		}
	}
}
