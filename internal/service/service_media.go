package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strconv"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// capsuleMediaDir is the subdirectory of the upload root holding capsule
// attachments, one directory per capsule.
const capsuleMediaDir = "capsules"

type mediaService struct {
	capsuleRepository store.CapsuleRepository
	mediaRepository   store.MediaRepository
	fileStorage       store.FileStorage

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewMediaService(
	capsuleRepository store.CapsuleRepository,
	mediaRepository store.MediaRepository,
	fileStorage store.FileStorage,
	logger *logger.Logger,
) MediaService {
	return &mediaService{
		capsuleRepository: capsuleRepository,
		mediaRepository:   mediaRepository,
		fileStorage:       fileStorage,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// UploadMedia attaches a batch of files to an existing capsule.
//
// Each file is classified by its MIME prefix, stored under the capsule's
// upload directory with a UUID-based name, and recorded as a media row. The
// batch is deliberately not transactional: a file that fails to store or
// record contributes an error message while the rest of the batch proceeds.
//
// Returns the accumulated per-file outcomes or:
//   - ErrInvalidDataProvided if capsuleID is zero.
//   - ErrNoFilesProvided if the batch is empty.
//   - store.ErrCapsuleNotFound if the capsule does not exist or is deleted.
func (m *mediaService) UploadMedia(ctx context.Context, capsuleID int64, files []FileUpload) (models.UploadResult, error) {
	log := logger.FromContext(ctx)

	if capsuleID == 0 {
		return models.UploadResult{}, ErrInvalidDataProvided
	}
	if len(files) == 0 {
		return models.UploadResult{}, ErrNoFilesProvided
	}

	if _, err := m.capsuleRepository.FindCapsuleByID(ctx, capsuleID); err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("capsule lookup failed")
		return models.UploadResult{}, fmt.Errorf("capsule lookup failed: %w", err)
	}

	result := models.UploadResult{
		Files:  []models.UploadedFile{},
		Errors: []string{},
	}

	for i, file := range files {
		storageName := m.uuid.Generate() + filepath.Ext(file.FileName)
		relPath := path.Join(capsuleMediaDir, strconv.FormatInt(capsuleID, 10), storageName)

		storedPath, err := m.fileStorage.Save(ctx, relPath, file.Data)
		if err != nil {
			log.Err(err).Str("file", file.FileName).Msg("error storing media file")
			result.Errors = append(result.Errors, fmt.Sprintf("%s: failed to store file", file.FileName))
			continue
		}

		created, err := m.mediaRepository.CreateMedia(ctx, models.Media{
			CapsuleID:    capsuleID,
			MediaType:    models.MediaTypeFromMIME(file.MimeType),
			FileName:     file.FileName,
			FilePath:     storedPath,
			MimeType:     file.MimeType,
			FileSize:     file.Size,
			DisplayOrder: i,
		})
		if err != nil {
			log.Err(err).Str("file", file.FileName).Msg("error recording media row")
			if removeErr := m.fileStorage.Remove(ctx, storedPath); removeErr != nil {
				log.Err(removeErr).Str("path", storedPath).Msg("error removing orphaned media file")
			}
			result.Errors = append(result.Errors, fmt.Sprintf("%s: failed to save record", file.FileName))
			continue
		}

		result.Files = append(result.Files, models.UploadedFile{
			MediaID:   created.MediaID,
			FileName:  created.FileName,
			MediaType: created.MediaType,
			FilePath:  created.FilePath,
		})
	}

	return result, nil
}

// DeleteMedia removes a batch of media rows and their stored files.
//
// For each id the row is deleted first, then the file; a file already gone
// from disk is not an error. Ids that match no row are silently skipped so
// repeated delete requests stay idempotent.
//
// Returns the number of deleted rows plus per-id error messages, or
// ErrInvalidDataProvided when the id list is empty.
func (m *mediaService) DeleteMedia(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	if len(req.MediaIDs) == 0 {
		return models.DeleteResult{}, ErrInvalidDataProvided
	}

	result := models.DeleteResult{
		Errors: []string{},
	}

	for _, mediaID := range req.MediaIDs {
		media, err := m.mediaRepository.FindMediaByID(ctx, mediaID)
		if err != nil {
			if errors.Is(err, store.ErrMediaNotFound) {
				continue
			}
			log.Err(err).Int64("media_id", mediaID).Msg("media lookup failed")
			result.Errors = append(result.Errors, fmt.Sprintf("media %d: lookup failed", mediaID))
			continue
		}

		if err := m.mediaRepository.DeleteMedia(ctx, mediaID); err != nil {
			if errors.Is(err, store.ErrMediaNotFound) {
				continue
			}
			log.Err(err).Int64("media_id", mediaID).Msg("error deleting media row")
			result.Errors = append(result.Errors, fmt.Sprintf("media %d: failed to delete record", mediaID))
			continue
		}

		if err := m.fileStorage.Remove(ctx, media.FilePath); err != nil {
			log.Err(err).Str("path", media.FilePath).Msg("error removing media file")
			result.Errors = append(result.Errors, fmt.Sprintf("media %d: record deleted but file removal failed", mediaID))
		}

		result.DeletedCount++
	}

	return result, nil
}
