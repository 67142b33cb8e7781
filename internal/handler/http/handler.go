// Package http implements the HTTP transport layer of the portal.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Session authentication, logging, and tracing concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"net/http"
	"time"

	"github.com/communication-ltd/portal/internal/config"
	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/service"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

type Handler struct {
	services *service.Services

	// sessionTTL sizes the Max-Age of the session cookie to match the
	// lifetime of the session row behind it.
	sessionTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		sessionTTL: cfg.SessionTTL,
		logger:     logger,
	}
}

// writeMessage writes the standard JSON message envelope with the given
// status code.
func (h *Handler) writeMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
