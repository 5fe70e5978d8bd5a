package store

import (
	"context"
	"time"

	"github.com/eterna-app/eterna/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// ProfileRepository persists the lazily created profile extension of a user.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID int64) (models.Profile, error)
	// UpsertProfile updates users.first_name/last_name and creates or updates
	// the user_profiles row in one transaction.
	UpsertProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error
	// SetProfilePicture stores the relative path of the uploaded picture,
	// creating the profile row on first use. The previous path is returned so
	// the caller can remove the replaced file.
	SetProfilePicture(ctx context.Context, userID int64, path string) (oldPath string, err error)
	CapsuleStats(ctx context.Context, userID int64) (models.CapsuleStats, error)
}

// CapsuleRepository persists capsules and their soft-delete lifecycle.
type CapsuleRepository interface {
	CreateCapsule(ctx context.Context, capsule models.Capsule) (int64, error)
	ListCapsulesByOwner(ctx context.Context, userID int64) ([]models.Capsule, error)
	FindCapsuleByID(ctx context.Context, capsuleID int64) (models.Capsule, error)
	UpdateCapsule(ctx context.Context, update models.CapsuleUpdate) error
	SoftDeleteCapsule(ctx context.Context, capsuleID, userID int64, at time.Time) error
}

// MediaRepository persists capsule attachments.
type MediaRepository interface {
	CreateMedia(ctx context.Context, media models.Media) (models.Media, error)
	ListMediaByCapsule(ctx context.Context, capsuleID int64) ([]models.Media, error)
	FindMediaByID(ctx context.Context, mediaID int64) (models.Media, error)
	DeleteMedia(ctx context.Context, mediaID int64) error
}

// ShareRepository persists capsule shares.
type ShareRepository interface {
	// CreateShare verifies the recipient inside a transaction and inserts the
	// share row. Returns [ErrAlreadyShared] for a duplicate
	// (capsule, recipient) pair.
	CreateShare(ctx context.Context, share models.Share) (models.Share, error)
}
