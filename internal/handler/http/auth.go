package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/service"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
	"github.com/communication-ltd/portal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeMessage(w, "All fields are required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeMessage(w, "An error occurred during registration", http.StatusInternalServerError)
			return
		}
	}

	if !result.Valid {
		h.writeMessage(w, result.Message, http.StatusBadRequest)
		return
	}

	h.writeMessage(w, result.Message, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	throttle, err := h.services.ThrottleService.Check(ctx, req.Username)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during throttle check")
		h.writeMessage(w, "An error occurred during login", http.StatusInternalServerError)
		return
	}
	if !throttle.Allowed {
		h.writeMessage(w, throttle.Message, http.StatusTooManyRequests)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			h.writeMessage(w, "All fields are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword):
			// uniform response: do not reveal which usernames exist
			if recordErr := h.services.ThrottleService.RecordFailure(ctx, req.Username); recordErr != nil {
				log.Err(recordErr).Msg("recording login failure failed")
			}
			h.writeMessage(w, "Invalid username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.writeMessage(w, "An error occurred during login", http.StatusInternalServerError)
			return
		}
	}

	if err := h.services.ThrottleService.Reset(ctx, req.Username); err != nil {
		// the login itself succeeded; a stale counter is tolerable
		log.Err(err).Msg("resetting login attempts failed")
	}

	token, err := h.services.SessionService.Create(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		h.writeMessage(w, "An error occurred during login", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	h.writeMessage(w, "Login successful", http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no session token in context")
		h.writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.services.SessionService.Revoke(ctx, token); err != nil {
		log.Err(err).Msg("session revocation failed")
		h.writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	h.writeMessage(w, "Logged out successfully", http.StatusOK)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetSessionUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no session user in context")
		h.writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response := models.SessionUserResponse{
		User: models.SessionUser{
			ID:       user.UserID,
			Username: user.Username,
		},
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
