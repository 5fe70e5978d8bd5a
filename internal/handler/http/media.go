package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// maxMediaFormMemory caps the in-memory part of media multipart parsing;
// larger parts spill to temporary files.
const maxMediaFormMemory = 32 << 20

func (h *Handler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxMediaFormMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		h.writeBadRequest(w, r, "invalid multipart form")
		return
	}

	capsuleID, err := strconv.ParseInt(r.FormValue("capsule_id"), 10, 64)
	if err != nil || capsuleID < 1 {
		log.Error().Str("capsule_id", r.FormValue("capsule_id")).Msg("invalid capsule_id form value")
		h.writeBadRequest(w, r, "invalid capsule_id")
		return
	}

	var files []service.FileUpload
	for _, header := range r.MultipartForm.File["media"] {
		file, err := header.Open()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error opening uploaded file")
			h.writeBadRequest(w, r, "unreadable uploaded file")
			return
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error reading uploaded file")
			h.writeError(w, r, err)
			return
		}

		files = append(files, service.FileUpload{
			FileName: header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Size:     header.Size,
			Data:     data,
		})
	}

	result, err := h.services.MediaService.UploadMedia(ctx, capsuleID, files)
	if err != nil {
		log.Err(err).Msg("media upload failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UploadMediaResponse{
		Success: len(result.Files) > 0,
		Files:   result.Files,
		Errors:  result.Errors,
	}, http.StatusCreated)
}

func (h *Handler) deleteMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeleteMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeBadRequest(w, r, "invalid JSON was passed")
		return
	}

	result, err := h.services.MediaService.DeleteMedia(ctx, req)
	if err != nil {
		log.Err(err).Msg("media deletion failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteMediaResponse{
		Success:      true,
		DeletedCount: result.DeletedCount,
		Errors:       result.Errors,
	}, http.StatusOK)
}
