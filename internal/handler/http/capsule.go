package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

func (h *Handler) createCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	capsuleID, err := h.services.CapsuleService.CreateCapsule(ctx, req)
	if err != nil {
		log.Err(err).Msg("capsule creation failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CreateCapsuleResponse{
		Success:   true,
		Message:   "capsule created",
		CapsuleID: capsuleID,
	}, http.StatusCreated)
}

func (h *Handler) listCapsules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID < 1 {
		log.Error().Str("user_id", r.URL.Query().Get("user_id")).Msg("invalid user_id query param")
		h.writeBadRequest(w, r, "invalid user_id")
		return
	}

	capsules, err := h.services.CapsuleService.ListCapsules(ctx, userID)
	if err != nil {
		log.Err(err).Msg("capsule listing failed")
		h.writeError(w, r, err)
		return
	}

	if capsules == nil {
		capsules = []models.Capsule{}
	}

	utils.WriteJSON(w, models.ListCapsulesResponse{
		Success:  true,
		Capsules: capsules,
	}, http.StatusOK)
}

func (h *Handler) getCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	capsuleID, err := capsuleIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid capsule id in url")
		h.writeBadRequest(w, r, "invalid capsule id")
		return
	}

	capsule, locked, err := h.services.CapsuleService.GetCapsule(ctx, capsuleID)
	if err != nil {
		log.Err(err).Msg("capsule read failed")
		h.writeError(w, r, err)
		return
	}

	if locked {
		utils.WriteJSON(w, models.CapsuleDetailResponse{
			Success:  true,
			Message:  "this capsule is still locked",
			Locked:   true,
			OpenDate: capsule.OpenDate.Format(time.RFC3339),
		}, http.StatusOK)
		return
	}

	utils.WriteJSON(w, models.CapsuleDetailResponse{
		Success: true,
		Capsule: &capsule,
	}, http.StatusOK)
}

func (h *Handler) updateCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	capsuleID, err := capsuleIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid capsule id in url")
		h.writeBadRequest(w, r, "invalid capsule id")
		return
	}

	var req models.UpdateCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	if err := h.services.CapsuleService.UpdateCapsule(ctx, capsuleID, userID, req); err != nil {
		log.Err(err).Msg("capsule update failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "capsule updated"}, http.StatusOK)
}

func (h *Handler) deleteCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	capsuleID, err := capsuleIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid capsule id in url")
		h.writeBadRequest(w, r, "invalid capsule id")
		return
	}

	if err := h.services.CapsuleService.DeleteCapsule(ctx, capsuleID, userID); err != nil {
		log.Err(err).Msg("capsule deletion failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "capsule deleted"}, http.StatusOK)
}

func (h *Handler) shareCapsule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	capsuleID, err := capsuleIDFromURL(r)
	if err != nil {
		log.Err(err).Msg("invalid capsule id in url")
		h.writeBadRequest(w, r, "invalid capsule id")
		return
	}

	var req models.ShareCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	if _, err := h.services.CapsuleService.ShareCapsule(ctx, capsuleID, userID, req); err != nil {
		log.Err(err).Msg("capsule share failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "capsule shared"}, http.StatusOK)
}

func capsuleIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "capsuleID"), 10, 64)
}
