package http

import (
	"errors"
	"net/http"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/service"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrInvalidDate:             http.StatusBadRequest,
	service.ErrEmptyUpdate:             http.StatusBadRequest,
	service.ErrNoFilesProvided:         http.StatusBadRequest,
	service.ErrFileTooLarge:            http.StatusBadRequest,
	service.ErrUnsupportedFileType:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotCapsuleOwner:         http.StatusForbidden,
	service.ErrRecipientNotFound:       http.StatusNotFound,
	service.ErrCannotShareWithSelf:     http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrAlreadyShared:      http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCapsuleNotFound:    http.StatusNotFound,
	store.ErrMediaNotFound:      http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError reports a failed operation through the standard JSON envelope.
// Known sentinel errors keep their message; anything unmapped becomes a
// generic 500 so that internal details never leak to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := "internal server error"
	if status != http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				message = target.Error()
				break
			}
		}
	}

	if _, writeErr := utils.WriteJSON(w, models.Response{Success: false, Message: message}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeBadRequest reports a malformed request with an explicit message,
// bypassing the sentinel mapping.
func (h *Handler) writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	log := logger.FromRequest(r)

	if _, err := utils.WriteJSON(w, models.Response{Success: false, Message: message}, http.StatusBadRequest); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}
