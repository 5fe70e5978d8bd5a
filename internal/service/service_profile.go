package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/internal/utils"
	"github.com/eterna-app/eterna/models"
)

// maxProfilePictureSize is the upload cap for profile pictures.
const maxProfilePictureSize = 5 << 20

// profilePictureDir is the subdirectory of the upload root holding profile
// pictures.
const profilePictureDir = "profiles"

type profileService struct {
	userRepository    store.UserRepository
	profileRepository store.ProfileRepository
	fileStorage       store.FileStorage

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewProfileService(
	userRepository store.UserRepository,
	profileRepository store.ProfileRepository,
	fileStorage store.FileStorage,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		userRepository:    userRepository,
		profileRepository: profileRepository,
		fileStorage:       fileStorage,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// GetProfile aggregates everything the profile page needs: the user record,
// the profile extension and the capsule stats. A user who never edited their
// profile has no user_profiles row; the repository reports that as zero
// values, not as an error.
func (p *profileService) GetProfile(ctx context.Context, userID int64) (models.User, models.Profile, models.CapsuleStats, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.User{}, models.Profile{}, models.CapsuleStats{}, ErrInvalidDataProvided
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, models.Profile{}, models.CapsuleStats{}, fmt.Errorf("user lookup failed: %w", err)
	}

	profile, err := p.profileRepository.FindProfileByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.User{}, models.Profile{}, models.CapsuleStats{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	stats, err := p.profileRepository.CapsuleStats(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("capsule stats query failed")
		return models.User{}, models.Profile{}, models.CapsuleStats{}, fmt.Errorf("capsule stats query failed: %w", err)
	}

	return user, profile, stats, nil
}

// UpdateProfile writes the user's name fields and upserts the profile row in
// a single transaction. First and last name are required; the remaining
// fields overwrite stored values as submitted, so an empty bio clears the
// stored bio.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) error {
	log := logger.FromContext(ctx)

	update := models.ProfileUpdate{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Bio:       req.Bio,
		Location:  req.Location,
	}
	if userID == 0 || update.FirstName == "" || update.LastName == "" {
		return ErrInvalidDataProvided
	}

	if req.BirthDate != "" {
		birthDate, err := parseClientDate(req.BirthDate)
		if err != nil {
			log.Error().Str("birth_date", req.BirthDate).Msg("unparseable birth date")
			return ErrInvalidDate
		}
		update.BirthDate = &birthDate
	}

	if err := p.profileRepository.UpsertProfile(ctx, userID, update); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return fmt.Errorf("profile update ended with error: %w", err)
	}

	return nil
}

// UploadProfilePicture validates, stores and records a new profile picture.
//
// Only image/* files up to 5 MB are accepted. The stored name embeds the
// user id and a fresh UUID so uploads never collide. After the database row
// points at the new file, the previously stored picture file is removed;
// a failed removal is logged but does not fail the upload.
func (p *profileService) UploadProfilePicture(ctx context.Context, userID int64, file FileUpload) (string, error) {
	log := logger.FromContext(ctx)

	if userID == 0 || len(file.Data) == 0 {
		return "", ErrInvalidDataProvided
	}

	if !strings.HasPrefix(file.MimeType, "image/") {
		return "", ErrUnsupportedFileType
	}

	if file.Size > maxProfilePictureSize || int64(len(file.Data)) > maxProfilePictureSize {
		return "", ErrFileTooLarge
	}

	storageName := fmt.Sprintf("profile_%d_%s%s", userID, p.uuid.Generate(), filepath.Ext(file.FileName))
	storedPath, err := p.fileStorage.Save(ctx, path.Join(profilePictureDir, storageName), file.Data)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error storing profile picture")
		return "", fmt.Errorf("error storing profile picture: %w", err)
	}

	oldPath, err := p.profileRepository.SetProfilePicture(ctx, userID, storedPath)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error recording profile picture")
		if removeErr := p.fileStorage.Remove(ctx, storedPath); removeErr != nil {
			log.Err(removeErr).Str("path", storedPath).Msg("error removing orphaned picture file")
		}
		return "", fmt.Errorf("error recording profile picture: %w", err)
	}

	if oldPath != "" && oldPath != storedPath {
		if err := p.fileStorage.Remove(ctx, oldPath); err != nil {
			log.Err(err).Str("path", oldPath).Msg("error removing replaced picture file")
		}
	}

	return storedPath, nil
}
