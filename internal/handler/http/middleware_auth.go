// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// auth guards a route group with bearer-token authentication. The token
// from the Authorization header is validated by the auth service and the
// resulting user id is stored under [utils.UserIDCtxKey] for downstream
// handlers. A missing header, a malformed header or a bad token all get
// a 401 with the standard JSON envelope.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeUnauthorized(w, r, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeUnauthorized(w, r, err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeUnauthorized(w, r, "token is expired or invalid")
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) writeUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Success: false, Message: message}, http.StatusUnauthorized); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

// getTokenFromAuthHeader splits an "Authorization: <scheme> <token>"
// header value and returns the token part. A header with no second part
// yields [ErrInvalidAuthorizationHeader]; an empty second part yields
// [ErrEmptyToken].
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
