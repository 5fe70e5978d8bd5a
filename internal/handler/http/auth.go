package http

import (
	"encoding/json"
	"net/http"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "registration successful",
		Token:   token.SignedString,
		User:    &registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   token.SignedString,
		User:    &foundUser,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		log.Err(err).Msg("password change failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "password updated"}, http.StatusOK)
}
