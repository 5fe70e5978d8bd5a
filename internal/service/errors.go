package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrWrongPassword       = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidDate = errors.New("invalid date provided")
	ErrEmptyUpdate = errors.New("no fields to update")

	ErrNotCapsuleOwner    = errors.New("capsule belongs to another user")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrCannotShareWithSelf = errors.New("cannot share a capsule with yourself")

	ErrFileTooLarge        = errors.New("file is too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrNoFilesProvided     = errors.New("no files provided")
)
