package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/portfolio-contact/api/internal/dto"
)

// Response messages shown to site visitors.
const (
	MessageOnline         = "Servidor de contato está online!"
	MessageStored         = "Mensagem enviada e salva com sucesso!"
	MessageMissingFields  = "Todos os campos são obrigatórios."
	MessageInvalidRequest = "Requisição inválida."
	MessageInternalError  = "Erro ao enviar a mensagem. Por favor, tente novamente mais tarde."
)

// Success acknowledges a created resource with its identifier.
func Success(c echo.Context, status int, message, messageID string) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, dto.SubmitMessageResponse{Message: message, MessageID: messageID})
}

// Error sends a {message} body. Server errors always carry the generic message.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		message = MessageInternalError
	}
	return c.JSON(status, dto.MessageResponse{Message: message})
}
