package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/eterna-app/eterna/models"
)

const (
	createUser = `INSERT INTO users (first_name, last_name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, first_name, last_name, email, password_hash, joined_date, last_login, is_active;`

	findActiveUserByEmail = `SELECT user_id, first_name, last_name, email, password_hash, joined_date, last_login, is_active
    FROM users
    WHERE email = $1 AND is_active = TRUE;`

	findUserByID = `SELECT user_id, first_name, last_name, email, password_hash, joined_date, last_login, is_active
    FROM users
    WHERE user_id = $1;`

	updateLastLogin = `UPDATE users SET last_login = $2 WHERE user_id = $1;`

	updatePasswordHash = `UPDATE users SET password_hash = $2 WHERE user_id = $1;`

	updateUserName = `UPDATE users SET first_name = $2, last_name = $3 WHERE user_id = $1;`

	findProfileByUserID = `SELECT profile_id, user_id, bio, birth_date, location, profile_picture
    FROM user_profiles
    WHERE user_id = $1;`

	upsertProfile = `INSERT INTO user_profiles (user_id, bio, birth_date, location)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (user_id) DO UPDATE
    SET bio = EXCLUDED.bio, birth_date = EXCLUDED.birth_date, location = EXCLUDED.location;`

	selectProfilePicture = `SELECT profile_picture FROM user_profiles WHERE user_id = $1;`

	upsertProfilePicture = `INSERT INTO user_profiles (user_id, profile_picture)
    VALUES ($1, $2)
    ON CONFLICT (user_id) DO UPDATE
    SET profile_picture = EXCLUDED.profile_picture;`

	selectCapsuleStats = `SELECT
        COUNT(*),
        COUNT(*) FILTER (WHERE capsule_type = 'private'),
        COUNT(*) FILTER (WHERE capsule_type = 'shared'),
        COUNT(*) FILTER (WHERE capsule_type = 'future')
    FROM capsules
    WHERE user_id = $1 AND is_deleted = FALSE;`

	createCapsule = `INSERT INTO capsules
    (user_id, title, description, story_text, date_of_memory, location_name, capsule_type, open_date, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING capsule_id;`

	capsuleColumns = `capsule_id, user_id, title, description, story_text, date_of_memory,
        location_name, capsule_type, open_date, status, created_at, updated_at`

	listCapsulesByOwner = `SELECT ` + capsuleColumns + `
    FROM capsules
    WHERE user_id = $1 AND is_deleted = FALSE
    ORDER BY open_date DESC;`

	findCapsuleByID = `SELECT ` + capsuleColumns + `
    FROM capsules
    WHERE capsule_id = $1 AND is_deleted = FALSE;`

	softDeleteCapsule = `UPDATE capsules
    SET is_deleted = TRUE, deleted_at = $3
    WHERE capsule_id = $1 AND user_id = $2 AND is_deleted = FALSE;`

	createMedia = `INSERT INTO media
    (capsule_id, media_type, file_name, file_path, mime_type, file_size, display_order)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING media_id, upload_date;`

	listMediaByCapsule = `SELECT media_id, capsule_id, media_type, file_name, file_path, mime_type, file_size, display_order, upload_date
    FROM media
    WHERE capsule_id = $1
    ORDER BY display_order, upload_date;`

	findMediaByID = `SELECT media_id, capsule_id, media_type, file_name, file_path, mime_type, file_size, display_order, upload_date
    FROM media
    WHERE media_id = $1;`

	deleteMedia = `DELETE FROM media WHERE media_id = $1;`

	findShareByCapsuleAndRecipient = `SELECT share_id FROM shared_capsules
    WHERE capsule_id = $1 AND shared_with = $2;`

	createShare = `INSERT INTO shared_capsules (capsule_id, shared_by, shared_with, message)
    VALUES ($1, $2, $3, $4)
    RETURNING share_id, shared_at;`
)

// buildCapsuleUpdateQuery builds the dynamic partial-update statement for a
// capsule. Only the fields present in update produce SET clauses; updated_at
// is always touched. The WHERE clause filters by both capsule id and owner id
// so a caller can never modify somebody else's capsule, and skips
// soft-deleted rows.
func buildCapsuleUpdateQuery(update models.CapsuleUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("capsules").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.StoryText != nil {
		builder = builder.Set("story_text", *update.StoryText)
	}
	if update.DateOfMemory != nil {
		builder = builder.Set("date_of_memory", *update.DateOfMemory)
	}
	if update.LocationName != nil {
		builder = builder.Set("location_name", *update.LocationName)
	}
	if update.CapsuleType != nil {
		builder = builder.Set("capsule_type", string(*update.CapsuleType))
	}

	builder = builder.Where(sq.Eq{
		"capsule_id": update.CapsuleID,
		"user_id":    update.UserID,
		"is_deleted": false,
	})

	return builder.ToSql()
}
