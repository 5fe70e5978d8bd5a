// Package adapter provides a typed client for the ETERNA HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples callers (CLI
// tooling, integration tests, future client applications) from the wire
// protocol. The package ships an HTTP/REST implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/eterna-app/eterna/models"
)

// ServerAdapter defines transport-agnostic communication with the ETERNA
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the created user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken and returns the server-side user record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// ChangePassword rotates the authenticated user's password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// GetProfile fetches the authenticated user's account, profile and
	// capsule stats.
	GetProfile(ctx context.Context) (models.ProfileResponse, error)

	// UpdateProfile overwrites the authenticated user's profile fields.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error

	// CreateCapsule creates a capsule and returns its id.
	CreateCapsule(ctx context.Context, req models.CreateCapsuleRequest) (int64, error)

	// ListCapsules fetches the owner's capsules, newest open date first.
	ListCapsules(ctx context.Context, userID int64) ([]models.Capsule, error)

	// GetCapsule fetches one capsule. For a still-locked future capsule the
	// response carries Locked plus the open date instead of the payload.
	GetCapsule(ctx context.Context, capsuleID int64) (models.CapsuleDetailResponse, error)

	// UpdateCapsule applies a partial update to an owned capsule.
	UpdateCapsule(ctx context.Context, capsuleID int64, req models.UpdateCapsuleRequest) error

	// DeleteCapsule soft-deletes an owned capsule.
	DeleteCapsule(ctx context.Context, capsuleID int64) error

	// ShareCapsule grants another user read access to an owned capsule.
	ShareCapsule(ctx context.Context, capsuleID int64, req models.ShareCapsuleRequest) error

	// UploadMedia attaches files to a capsule in a single multipart batch.
	UploadMedia(ctx context.Context, capsuleID int64, files []MediaFile) (models.UploadMediaResponse, error)

	// DeleteMedia removes media attachments by id.
	DeleteMedia(ctx context.Context, req models.DeleteMediaRequest) (models.DeleteMediaResponse, error)
}

// MediaFile is one file of a media-upload batch.
type MediaFile struct {
	FileName string
	MimeType string
	Data     []byte
}
