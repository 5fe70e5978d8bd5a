package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// maxPictureFormMemory caps the in-memory part of profile picture multipart
// parsing; larger parts spill to temporary files.
const maxPictureFormMemory = 8 << 20

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	user, profile, stats, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Msg("profile read failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Success: true,
		User:    &user,
		Profile: &profile,
		Stats:   stats,
	}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	if err := h.services.ProfileService.UpdateProfile(ctx, userID, req); err != nil {
		log.Err(err).Msg("profile update failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "profile updated"}, http.StatusOK)
}

func (h *Handler) uploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		h.writeUnauthorized(w, r, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxPictureFormMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		h.writeBadRequest(w, r, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		log.Err(err).Msg("missing profile_picture file")
		h.writeBadRequest(w, r, "missing profile_picture file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("error reading uploaded file")
		h.writeError(w, r, err)
		return
	}

	storedPath, err := h.services.ProfileService.UploadProfilePicture(ctx, userID, service.FileUpload{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Data:     data,
	})
	if err != nil {
		log.Err(err).Msg("profile picture upload failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UploadPictureResponse{
		Success:  true,
		Message:  "profile picture updated",
		FilePath: storedPath,
	}, http.StatusOK)
}
