package models

import (
	"strings"
	"time"
)

// MediaType classifies an attachment by the prefix of its MIME type.
type MediaType string

const (
	MediaTypeImage    MediaType = "image"
	MediaTypeVideo    MediaType = "video"
	MediaTypeAudio    MediaType = "audio"
	MediaTypeDocument MediaType = "document"
)

// MediaTypeFromMIME derives the media type from a MIME type string.
// Anything that is not image/*, video/* or audio/* is a document.
func MediaTypeFromMIME(mimeType string) MediaType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaTypeVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return MediaTypeAudio
	default:
		return MediaTypeDocument
	}
}

// Media is a file attached to a capsule. Ownership cascades with the capsule:
// deleting a capsule row removes its media rows too.
type Media struct {
	MediaID   int64 `json:"media_id"`
	CapsuleID int64 `json:"capsule_id"`

	MediaType MediaType `json:"media_type"`

	// FileName is the original name the file was uploaded under.
	FileName string `json:"file_name"`

	// FilePath is the stored path relative to the application root, e.g.
	// "uploads/capsules/7/0192f3a2.jpg". Clients rewrite the prefix for the
	// current page location; the server never stores absolute paths.
	FilePath string `json:"file_path"`

	MimeType string `json:"mime_type"`
	FileSize int64  `json:"file_size"`

	// DisplayOrder is the explicit ordinal position within the capsule's
	// gallery. Media is listed by display order first, upload time second.
	DisplayOrder int `json:"display_order"`

	UploadDate time.Time `json:"upload_date"`
}

// TableName returns the name of the database table
// associated with the Media model.
func (m Media) TableName() string {
	return "media"
}

// UploadedFile is one accepted file of a media-upload batch as reported back
// to the client.
type UploadedFile struct {
	MediaID   int64     `json:"media_id"`
	FileName  string    `json:"file_name"`
	MediaType MediaType `json:"media_type"`
	FilePath  string    `json:"file_path"`
}

// UploadResult is the outcome of a media-upload batch. Per-file failures do
// not abort the batch: Files holds the successes, Errors the messages of the
// files that failed.
type UploadResult struct {
	Files  []UploadedFile `json:"files"`
	Errors []string       `json:"errors"`
}

// DeleteResult is the outcome of a media-delete batch. Absent ids are
// silently skipped and counted in neither field.
type DeleteResult struct {
	DeletedCount int      `json:"deleted_count"`
	Errors       []string `json:"errors"`
}
