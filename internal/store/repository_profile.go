package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. The profile row is created lazily: a user has no
// user_profiles row until the first profile write, and readers treat the
// missing row as an all-zero profile.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// FindProfileByUserID retrieves the profile extension of the user. A missing
// row is not an error: the zero-valued profile is returned instead, matching
// the lazy-creation lifecycle.
func (r *profileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, findProfileByUserID, userID)

	err := row.Scan(
		&profile.ProfileID,
		&profile.UserID,
		&profile.Bio,
		&profile.BirthDate,
		&profile.Location,
		&profile.ProfilePicture,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{UserID: userID}, nil
		}
		log.Err(err).Str("func", "*profileRepository.FindProfileByUserID").Msg("error: scanning error")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}

// UpsertProfile updates the name fields on the users row and creates or
// updates the user_profiles row, all inside one transaction: either both
// writes land or neither does.
func (r *profileRepository) UpsertProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, updateUserName, userID, update.FirstName, update.LastName)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("failed to update user name")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if _, err := tx.ExecContext(ctx, upsertProfile, userID, update.Bio, update.BirthDate, update.Location); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*profileRepository.UpsertProfile").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// SetProfilePicture stores the relative path of a newly uploaded picture and
// returns the previously stored path (empty when none), so the caller can
// remove the replaced file after the database write has succeeded.
func (r *profileRepository) SetProfilePicture(ctx context.Context, userID int64, path string) (string, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SetProfilePicture").Msg("failed to begin transaction")
		return "", fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var oldPath string
	err = tx.QueryRowContext(ctx, selectProfilePicture, userID).Scan(&oldPath)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*profileRepository.SetProfilePicture").Msg("failed to read previous picture path")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, upsertProfilePicture, userID, path); err != nil {
		log.Err(err).Str("func", "*profileRepository.SetProfilePicture").Msg("failed to upsert picture path")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*profileRepository.SetProfilePicture").Msg("failed to commit transaction")
		return "", fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return oldPath, nil
}

// CapsuleStats aggregates the per-type capsule counts of the user, excluding
// soft-deleted capsules.
func (r *profileRepository) CapsuleStats(ctx context.Context, userID int64) (models.CapsuleStats, error) {
	log := logger.FromContext(ctx)

	var stats models.CapsuleStats
	row := r.db.QueryRowContext(ctx, selectCapsuleStats, userID)

	if err := row.Scan(&stats.Total, &stats.Private, &stats.Shared, &stats.Future); err != nil {
		log.Err(err).Str("func", "*profileRepository.CapsuleStats").Msg("error: scanning error")
		return models.CapsuleStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}
