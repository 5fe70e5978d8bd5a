package service

import (
	"context"

	"github.com/eterna-app/eterna/models"
)

// FileUpload is one incoming file of a multipart upload, already buffered by
// the handler layer.
type FileUpload struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	// GetProfile returns the user record, the profile extension (zero values
	// when the row does not exist yet) and the capsule stats.
	GetProfile(ctx context.Context, userID int64) (models.User, models.Profile, models.CapsuleStats, error)
	UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) error
	// UploadProfilePicture stores the image and returns its stored path.
	// The previously stored picture file, if any, is removed.
	UploadProfilePicture(ctx context.Context, userID int64, file FileUpload) (string, error)
}

type CapsuleService interface {
	CreateCapsule(ctx context.Context, req models.CreateCapsuleRequest) (int64, error)
	ListCapsules(ctx context.Context, userID int64) ([]models.Capsule, error)
	// GetCapsule returns the capsule with its media. For a future capsule
	// whose open date has not passed, locked is true and the capsule carries
	// no media; visibility is recomputed from the clock on every call.
	GetCapsule(ctx context.Context, capsuleID int64) (capsule models.Capsule, locked bool, err error)
	// UpdateCapsule applies the request's non-empty fields to the capsule.
	// Empty submitted strings leave the stored values unchanged.
	UpdateCapsule(ctx context.Context, capsuleID, userID int64, req models.UpdateCapsuleRequest) error
	DeleteCapsule(ctx context.Context, capsuleID, userID int64) error
	ShareCapsule(ctx context.Context, capsuleID, ownerID int64, req models.ShareCapsuleRequest) (models.Share, error)
}

type MediaService interface {
	// UploadMedia attaches files to a capsule. Per-file failures do not
	// abort the batch.
	UploadMedia(ctx context.Context, capsuleID int64, files []FileUpload) (models.UploadResult, error)
	// DeleteMedia removes media rows and their stored files. Absent ids are
	// silently skipped.
	DeleteMedia(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteResult, error)
}
