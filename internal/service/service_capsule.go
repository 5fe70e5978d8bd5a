package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/internal/store"
	"github.com/eterna-app/eterna/models"
)

// defaultOpenDateOffset is applied to capsules that carry no unlock time:
// their open date is set one year past creation. Only future-type capsules
// actually lock; for the rest the open date is an ordering key.
const defaultOpenDateOffset = 365 * 24 * time.Hour

// dateLayouts are the accepted forms for client-submitted dates, tried in
// order: full RFC 3339, the HTML datetime-local format, and a bare date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

type capsuleService struct {
	capsuleRepository store.CapsuleRepository
	mediaRepository   store.MediaRepository
	shareRepository   store.ShareRepository
	userRepository    store.UserRepository

	// now supplies the wall clock for open-date defaults, soft-delete
	// timestamps and lock checks; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

func NewCapsuleService(
	capsuleRepository store.CapsuleRepository,
	mediaRepository store.MediaRepository,
	shareRepository store.ShareRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) CapsuleService {
	return &capsuleService{
		capsuleRepository: capsuleRepository,
		mediaRepository:   mediaRepository,
		shareRepository:   shareRepository,
		userRepository:    userRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateCapsule validates and persists a new capsule.
//
// The privacy value is normalised onto a known capsule type, defaulting to
// private. Future capsules require a parseable unlock time and are stored
// with status "locked"; all other capsules get status "sealed" and an open
// date one year ahead, used purely for ordering.
//
// Returns the new capsule id or:
//   - ErrInvalidDataProvided if UserID or Title is missing.
//   - ErrInvalidDate if a submitted date does not parse, or a future capsule
//     carries no unlock time.
func (c *capsuleService) CreateCapsule(ctx context.Context, req models.CreateCapsuleRequest) (int64, error) {
	log := logger.FromContext(ctx)

	title := strings.TrimSpace(req.Title)
	if req.UserID == 0 || title == "" {
		log.Error().Int64("user_id", req.UserID).Msg("incomplete capsule data")
		return 0, ErrInvalidDataProvided
	}

	capsuleType := models.NormalizeCapsuleType(req.Privacy)

	capsule := models.Capsule{
		UserID:       req.UserID,
		Title:        title,
		StoryText:    req.Text,
		LocationName: req.Location,
		CapsuleType:  capsuleType,
		Status:       models.CapsuleStatusSealed,
	}

	if req.Date != "" {
		memoryDate, err := parseClientDate(req.Date)
		if err != nil {
			log.Error().Str("date", req.Date).Msg("unparseable memory date")
			return 0, ErrInvalidDate
		}
		capsule.DateOfMemory = &memoryDate
	}

	if capsuleType == models.CapsuleTypeFuture {
		if req.UnlockDateTime == "" {
			return 0, ErrInvalidDate
		}
		openDate, err := parseClientDate(req.UnlockDateTime)
		if err != nil {
			log.Error().Str("unlock_date_time", req.UnlockDateTime).Msg("unparseable unlock time")
			return 0, ErrInvalidDate
		}
		capsule.OpenDate = openDate
		capsule.Status = models.CapsuleStatusLocked
	} else {
		capsule.OpenDate = c.now().Add(defaultOpenDateOffset)
	}

	capsuleID, err := c.capsuleRepository.CreateCapsule(ctx, capsule)
	if err != nil {
		log.Err(err).Int64("user_id", req.UserID).Msg("capsule creation ended with error")
		return 0, fmt.Errorf("capsule creation ended with error: %w", err)
	}

	return capsuleID, nil
}

// ListCapsules returns the owner's non-deleted capsules, newest open date
// first, each populated with its media.
func (c *capsuleService) ListCapsules(ctx context.Context, userID int64) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	capsules, err := c.capsuleRepository.ListCapsulesByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing capsules")
		return nil, fmt.Errorf("error listing capsules: %w", err)
	}

	for i := range capsules {
		media, err := c.mediaRepository.ListMediaByCapsule(ctx, capsules[i].CapsuleID)
		if err != nil {
			log.Err(err).Int64("capsule_id", capsules[i].CapsuleID).Msg("error listing capsule media")
			return nil, fmt.Errorf("error listing capsule media: %w", err)
		}
		capsules[i].Media = media
	}

	return capsules, nil
}

// GetCapsule returns a single capsule with its media.
//
// Lock state is recomputed on every call: a future capsule whose open date
// lies ahead of the current clock is returned with locked=true and no media.
// Nothing is mutated when the open date passes; visibility simply flips on
// the next read.
func (c *capsuleService) GetCapsule(ctx context.Context, capsuleID int64) (models.Capsule, bool, error) {
	log := logger.FromContext(ctx)

	capsule, err := c.capsuleRepository.FindCapsuleByID(ctx, capsuleID)
	if err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("capsule lookup failed")
		return models.Capsule{}, false, fmt.Errorf("capsule lookup failed: %w", err)
	}

	if capsule.LockedAt(c.now()) {
		return capsule, true, nil
	}

	media, err := c.mediaRepository.ListMediaByCapsule(ctx, capsuleID)
	if err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("error listing capsule media")
		return models.Capsule{}, false, fmt.Errorf("error listing capsule media: %w", err)
	}
	capsule.Media = media

	return capsule, false, nil
}

// UpdateCapsule applies a partial update to a capsule owned by the
// requesting user. Non-empty request fields overwrite the stored values;
// empty strings mean "leave unchanged" and never reach the database.
//
// Returns nil on success or:
//   - ErrEmptyUpdate if the request carries no field at all.
//   - ErrInvalidDate if the memory date does not parse.
//   - store.ErrCapsuleNotFound if the capsule does not exist, is deleted, or
//     belongs to another user.
func (c *capsuleService) UpdateCapsule(ctx context.Context, capsuleID, userID int64, req models.UpdateCapsuleRequest) error {
	log := logger.FromContext(ctx)

	if capsuleID == 0 || userID == 0 {
		return ErrInvalidDataProvided
	}

	update := models.CapsuleUpdate{
		CapsuleID: capsuleID,
		UserID:    userID,
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		update.Title = &title
	}
	if req.Description != "" {
		update.Description = &req.Description
	}
	if req.StoryText != "" {
		update.StoryText = &req.StoryText
	}
	if req.LocationName != "" {
		update.LocationName = &req.LocationName
	}
	if req.CapsuleType != "" {
		capsuleType := models.NormalizeCapsuleType(req.CapsuleType)
		update.CapsuleType = &capsuleType
	}
	if req.DateOfMemory != "" {
		memoryDate, err := parseClientDate(req.DateOfMemory)
		if err != nil {
			log.Error().Str("date_of_memory", req.DateOfMemory).Msg("unparseable memory date")
			return ErrInvalidDate
		}
		update.DateOfMemory = &memoryDate
	}

	if update.Empty() {
		return ErrEmptyUpdate
	}

	if err := c.capsuleRepository.UpdateCapsule(ctx, update); err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("capsule update ended with error")
		return fmt.Errorf("capsule update ended with error: %w", err)
	}

	return nil
}

// DeleteCapsule soft-deletes a capsule owned by the requesting user. The row
// stays in the database; list and detail reads exclude it from then on.
// An already-deleted or foreign capsule yields store.ErrCapsuleNotFound.
func (c *capsuleService) DeleteCapsule(ctx context.Context, capsuleID, userID int64) error {
	log := logger.FromContext(ctx)

	if capsuleID == 0 || userID == 0 {
		return ErrInvalidDataProvided
	}

	if err := c.capsuleRepository.SoftDeleteCapsule(ctx, capsuleID, userID, c.now()); err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("capsule deletion ended with error")
		return fmt.Errorf("capsule deletion ended with error: %w", err)
	}

	return nil
}

// ShareCapsule grants another user read access to a capsule.
//
// The capsule must exist and belong to ownerID, and the recipient must be an
// existing active user other than the owner. A repeated share of the same
// capsule to the same recipient yields store.ErrAlreadyShared.
//
// Returns the persisted share or:
//   - ErrInvalidDataProvided if the recipient email is empty.
//   - ErrNotCapsuleOwner if the capsule belongs to a different user.
//   - ErrRecipientNotFound if no active user matches the email.
//   - ErrCannotShareWithSelf if the recipient is the owner.
func (c *capsuleService) ShareCapsule(ctx context.Context, capsuleID, ownerID int64, req models.ShareCapsuleRequest) (models.Share, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(req.Email)
	if capsuleID == 0 || ownerID == 0 || email == "" {
		return models.Share{}, ErrInvalidDataProvided
	}

	capsule, err := c.capsuleRepository.FindCapsuleByID(ctx, capsuleID)
	if err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("capsule lookup failed")
		return models.Share{}, fmt.Errorf("capsule lookup failed: %w", err)
	}

	if capsule.UserID != ownerID {
		log.Error().Int64("capsule_id", capsuleID).Int64("user_id", ownerID).Msg("share attempt on foreign capsule")
		return models.Share{}, ErrNotCapsuleOwner
	}

	recipient, err := c.userRepository.FindActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.Share{}, ErrRecipientNotFound
		}
		log.Err(err).Str("email", email).Msg("recipient lookup failed")
		return models.Share{}, fmt.Errorf("recipient lookup failed: %w", err)
	}

	if recipient.UserID == ownerID {
		return models.Share{}, ErrCannotShareWithSelf
	}

	share, err := c.shareRepository.CreateShare(ctx, models.Share{
		CapsuleID:  capsuleID,
		SharedBy:   ownerID,
		SharedWith: recipient.UserID,
		Message:    req.Message,
	})
	if err != nil {
		log.Err(err).Int64("capsule_id", capsuleID).Msg("share creation ended with error")
		return models.Share{}, fmt.Errorf("share creation ended with error: %w", err)
	}

	return share, nil
}

// parseClientDate tries each accepted layout in order and returns the first
// successful parse.
func parseClientDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
