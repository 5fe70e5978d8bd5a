package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/models"
	"github.com/jackc/pgerrcode"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository].
type shareRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShareRepository constructs a [ShareRepository] backed by the provided
// database connection and logger.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

// CreateShare inserts a share record inside a transaction: a duplicate check
// followed by the insert, rolled back entirely if any step fails.
//
// Error handling:
//   - existing (capsule, recipient) pair → [ErrAlreadyShared], both via the
//     explicit check and via the unique constraint should two shares race;
//   - any other failure → wrapped statement/transaction error.
func (r *shareRepository) CreateShare(ctx context.Context, share models.Share) (models.Share, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shareRepository.CreateShare").Msg("failed to begin transaction")
		return models.Share{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRowContext(ctx, findShareByCapsuleAndRecipient, share.CapsuleID, share.SharedWith).Scan(&existingID)
	switch {
	case err == nil:
		return models.Share{}, ErrAlreadyShared
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*shareRepository.CreateShare").Msg("failed to check for existing share")
		return models.Share{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	row := tx.QueryRowContext(ctx, createShare, share.CapsuleID, share.SharedBy, share.SharedWith, share.Message)
	if err := row.Scan(&share.ShareID, &share.SharedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Share{}, ErrAlreadyShared
		}
		log.Err(err).Str("func", "*shareRepository.CreateShare").Int64("capsule_id", share.CapsuleID).Msg("failed to insert share")
		return models.Share{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*shareRepository.CreateShare").Msg("failed to commit transaction")
		return models.Share{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*shareRepository.CreateShare").
		Int64("capsule_id", share.CapsuleID).
		Int64("shared_with", share.SharedWith).
		Msg("capsule shared")

	return share, nil
}
