package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/models"
)

// capsuleRepository is the PostgreSQL-backed implementation of
// [CapsuleRepository].
//
// Deletion is always soft: rows are flagged and timestamped, never removed,
// and every read filters on is_deleted = FALSE.
type capsuleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCapsuleRepository constructs a [CapsuleRepository] backed by the
// provided database connection and logger.
func NewCapsuleRepository(db *DB, logger *logger.Logger) CapsuleRepository {
	logger.Debug().Msg("creating capsule repository")
	return &capsuleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCapsule inserts a new capsule row and returns its server-assigned id.
func (r *capsuleRepository) CreateCapsule(ctx context.Context, capsule models.Capsule) (int64, error) {
	log := logger.FromContext(ctx)

	var capsuleID int64
	row := r.db.QueryRowContext(ctx, createCapsule,
		capsule.UserID,
		capsule.Title,
		capsule.Description,
		capsule.StoryText,
		capsule.DateOfMemory,
		capsule.LocationName,
		string(capsule.CapsuleType),
		capsule.OpenDate,
		string(capsule.Status),
	)

	if err := row.Scan(&capsuleID); err != nil {
		log.Err(err).Str("func", "*capsuleRepository.CreateCapsule").Int64("user_id", capsule.UserID).Msg("failed to insert capsule")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return capsuleID, nil
}

// ListCapsulesByOwner returns all non-soft-deleted capsules of the user,
// ordered by open date descending. Media is not populated here; the service
// layer attaches it per capsule.
func (r *capsuleRepository) ListCapsulesByOwner(ctx context.Context, userID int64) ([]models.Capsule, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCapsulesByOwner, userID)
	if err != nil {
		log.Err(err).Str("func", "*capsuleRepository.ListCapsulesByOwner").Int64("user_id", userID).Msg("failed to query capsules")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	capsules := make([]models.Capsule, 0)
	for rows.Next() {
		var capsule models.Capsule
		if err := scanCapsule(rows, &capsule); err != nil {
			log.Err(err).Str("func", "*capsuleRepository.ListCapsulesByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		capsules = append(capsules, capsule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return capsules, nil
}

// FindCapsuleByID retrieves one capsule by id. Soft-deleted and absent
// capsules are both reported as [ErrCapsuleNotFound].
func (r *capsuleRepository) FindCapsuleByID(ctx context.Context, capsuleID int64) (models.Capsule, error) {
	log := logger.FromContext(ctx)

	var capsule models.Capsule
	row := r.db.QueryRowContext(ctx, findCapsuleByID, capsuleID)

	if err := scanCapsule(row, &capsule); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Capsule{}, ErrCapsuleNotFound
		}
		log.Err(err).Str("func", "*capsuleRepository.FindCapsuleByID").Int64("capsule_id", capsuleID).Msg("error: scanning error")
		return models.Capsule{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return capsule, nil
}

// UpdateCapsule applies a partial update: only the fields present in update
// overwrite stored values. The statement is built dynamically; see
// [buildCapsuleUpdateQuery]. The WHERE clause includes the owner id, so an
// update against somebody else's capsule affects zero rows and surfaces as
// [ErrCapsuleNotFound].
func (r *capsuleRepository) UpdateCapsule(ctx context.Context, update models.CapsuleUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return ErrNothingToUpdate
	}

	query, args, err := buildCapsuleUpdateQuery(update, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*capsuleRepository.UpdateCapsule").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*capsuleRepository.UpdateCapsule").Int64("capsule_id", update.CapsuleID).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCapsuleNotFound
	}

	log.Debug().
		Str("func", "*capsuleRepository.UpdateCapsule").
		Int64("capsule_id", update.CapsuleID).
		Int64("user_id", update.UserID).
		Msg("capsule updated")

	return nil
}

// SoftDeleteCapsule flags the capsule as deleted and records the timestamp.
// The row and its media stay physically present. Already-deleted, absent and
// foreign capsules all surface as [ErrCapsuleNotFound].
func (r *capsuleRepository) SoftDeleteCapsule(ctx context.Context, capsuleID, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, softDeleteCapsule, capsuleID, userID, at)
	if err != nil {
		log.Err(err).Str("func", "*capsuleRepository.SoftDeleteCapsule").Int64("capsule_id", capsuleID).Msg("failed to soft-delete capsule")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCapsuleNotFound
	}

	log.Info().
		Str("func", "*capsuleRepository.SoftDeleteCapsule").
		Int64("capsule_id", capsuleID).
		Int64("user_id", userID).
		Msg("capsule soft-deleted")

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCapsule(row rowScanner, dst *models.Capsule) error {
	return row.Scan(
		&dst.CapsuleID,
		&dst.UserID,
		&dst.Title,
		&dst.Description,
		&dst.StoryText,
		&dst.DateOfMemory,
		&dst.LocationName,
		&dst.CapsuleType,
		&dst.OpenDate,
		&dst.Status,
		&dst.CreatedAt,
		&dst.UpdatedAt,
	)
}
