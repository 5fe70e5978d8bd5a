package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eterna-app/eterna/internal/logger"
	"github.com/eterna-app/eterna/models"
)

// mediaRepository is the PostgreSQL-backed implementation of
// [MediaRepository]. Unlike capsules, media rows are deleted physically; the
// caller removes the underlying file after the row is gone.
type mediaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMediaRepository constructs a [MediaRepository] backed by the provided
// database connection and logger.
func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	logger.Debug().Msg("creating media repository")
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMedia inserts one media row and returns it with the server-assigned
// id and upload timestamp filled in.
func (r *mediaRepository) CreateMedia(ctx context.Context, media models.Media) (models.Media, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMedia,
		media.CapsuleID,
		string(media.MediaType),
		media.FileName,
		media.FilePath,
		media.MimeType,
		media.FileSize,
		media.DisplayOrder,
	)

	if err := row.Scan(&media.MediaID, &media.UploadDate); err != nil {
		log.Err(err).Str("func", "*mediaRepository.CreateMedia").Int64("capsule_id", media.CapsuleID).Msg("failed to insert media")
		return models.Media{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return media, nil
}

// ListMediaByCapsule returns the capsule's attachments ordered by display
// order, then upload time.
func (r *mediaRepository) ListMediaByCapsule(ctx context.Context, capsuleID int64) ([]models.Media, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMediaByCapsule, capsuleID)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.ListMediaByCapsule").Int64("capsule_id", capsuleID).Msg("failed to query media")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	media := make([]models.Media, 0)
	for rows.Next() {
		var m models.Media
		if err := scanMedia(rows, &m); err != nil {
			log.Err(err).Str("func", "*mediaRepository.ListMediaByCapsule").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		media = append(media, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return media, nil
}

// FindMediaByID retrieves one media row. Returns [ErrMediaNotFound] when the
// id does not exist.
func (r *mediaRepository) FindMediaByID(ctx context.Context, mediaID int64) (models.Media, error) {
	log := logger.FromContext(ctx)

	var m models.Media
	row := r.db.QueryRowContext(ctx, findMediaByID, mediaID)

	if err := scanMedia(row, &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Media{}, ErrMediaNotFound
		}
		log.Err(err).Str("func", "*mediaRepository.FindMediaByID").Int64("media_id", mediaID).Msg("error: scanning error")
		return models.Media{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

// DeleteMedia removes the media row. Returns [ErrMediaNotFound] when nothing
// was deleted.
func (r *mediaRepository) DeleteMedia(ctx context.Context, mediaID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteMedia, mediaID)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.DeleteMedia").Int64("media_id", mediaID).Msg("failed to delete media")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMediaNotFound
	}

	return nil
}

func scanMedia(row rowScanner, dst *models.Media) error {
	return row.Scan(
		&dst.MediaID,
		&dst.CapsuleID,
		&dst.MediaType,
		&dst.FileName,
		&dst.FilePath,
		&dst.MimeType,
		&dst.FileSize,
		&dst.DisplayOrder,
		&dst.UploadDate,
	)
}
