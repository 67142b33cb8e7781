package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/communication-ltd/portal/internal/logger"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, resolves the token to its owning user via
// [service.SessionService.Resolve], and on success stores both the user
// and the raw token in the request context before delegating to the next
// handler. Downstream handlers retrieve them with
// [utils.GetSessionUserFromContext] and [utils.GetSessionTokenFromContext].
//
// Requests are rejected with HTTP 401 Unauthorized when the cookie is
// absent or the token does not resolve to a live session; an expired
// session is indistinguishable from an unknown one. Infrastructure
// faults during resolution map to HTTP 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Warn().Msg("request without session cookie")
			h.writeMessage(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Warn().Msg("session not found or expired")
				h.writeMessage(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("error occurred during session resolution")
			h.writeMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionUserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
