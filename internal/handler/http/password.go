package http

import (
	"encoding/json"
	"net/http"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no session user in context")
		h.writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.ChangePassword(ctx, user, req.CurrentPassword, req.NewPassword)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during password change")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if !result.Valid {
		h.writeMessage(w, result.Message, http.StatusBadRequest)
		return
	}

	h.writeMessage(w, result.Message, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(ctx, req.Email); err != nil {
		log.Err(err).Msg("unexpected error occurred during password reset request")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	// uniform response whether or not the address is registered
	h.writeMessage(w, "If your email exists, a reset token has been sent", http.StatusOK)
}

func (h *Handler) verifyResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyResetTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.VerifyResetToken(ctx, req.Email, req.Token)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during token verification")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if !result.Valid {
		h.writeMessage(w, result.Message, http.StatusBadRequest)
		return
	}

	h.writeMessage(w, result.Message, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.ResetPassword(ctx, req.Email, req.Token, req.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during password reset")
		h.writeMessage(w, "An error occurred", http.StatusInternalServerError)
		return
	}

	if !result.Valid {
		h.writeMessage(w, result.Message, http.StatusBadRequest)
		return
	}

	h.writeMessage(w, result.Message, http.StatusOK)
}
