package models

// Response is the JSON envelope every endpoint emits. Handlers never let a
// fault escape as a non-JSON body: even infrastructure failures are reported
// through this shape with a generic message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned by register and login. Token carries the signed
// bearer token the client stores locally and presents on authenticated
// requests.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// CreateCapsuleResponse reports the id of a newly created capsule.
type CreateCapsuleResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	CapsuleID int64  `json:"capsule_id,omitempty"`
}

// ListCapsulesResponse wraps the owner's capsules, each with nested media.
// Capsules is always non-nil so the client receives [] instead of null.
type ListCapsulesResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Capsules []Capsule `json:"capsules"`
}

// CapsuleDetailResponse wraps a single capsule. When the capsule is a future
// capsule whose open date has not passed, Locked is true, Capsule is omitted
// and OpenDate tells the client what countdown to render.
type CapsuleDetailResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Locked   bool     `json:"locked,omitempty"`
	OpenDate string   `json:"open_date,omitempty"`
	Capsule  *Capsule `json:"capsule,omitempty"`
}

// ProfileResponse aggregates the user record, the lazily created profile
// (zero values when absent) and the capsule stats.
type ProfileResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *User        `json:"user,omitempty"`
	Profile *Profile     `json:"profile,omitempty"`
	Stats   CapsuleStats `json:"stats"`
}

// UploadMediaResponse reports a media-upload batch: accepted files plus the
// per-file error messages of the ones that failed.
type UploadMediaResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Files   []UploadedFile `json:"files"`
	Errors  []string       `json:"errors"`
}

// DeleteMediaResponse reports a media-delete batch.
type DeleteMediaResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message,omitempty"`
	DeletedCount int      `json:"deleted_count"`
	Errors       []string `json:"errors"`
}

// UploadPictureResponse reports the stored relative path of a newly uploaded
// profile picture.
type UploadPictureResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}
