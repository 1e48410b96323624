package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/octobees/portfolio-contact/api/internal/dto"
	"github.com/octobees/portfolio-contact/api/internal/middleware"
	"github.com/octobees/portfolio-contact/api/internal/service"
)

// ContactHandler receives contact form submissions.
type ContactHandler struct {
	service *service.ContactService
	log     logrus.FieldLogger
}

// NewContactHandler creates a new handler instance.
func NewContactHandler(service *service.ContactService, log logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{service: service, log: log}
}

// Submit handles POST /enviar-mensagem requests.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, MessageInvalidRequest)
	}

	sub, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return Error(c, http.StatusBadRequest, MessageMissingFields)
		}
		h.log.WithError(err).WithField("request_id", middleware.RequestIDFromContext(c)).Error("submission failed")
		return Error(c, http.StatusInternalServerError, MessageInternalError)
	}

	return Success(c, http.StatusCreated, MessageStored, sub.ID)
}
