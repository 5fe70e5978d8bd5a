package models

// RegisterRequest is the body of the registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest is the body of the password-change endpoint.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateCapsuleRequest is the body of the capsule-creation endpoint.
// UnlockDateTime is required by the client for future capsules; the server
// falls back to the default open-date policy when it is absent.
type CreateCapsuleRequest struct {
	UserID         int64  `json:"user_id"`
	Title          string `json:"title"`
	Date           string `json:"date,omitempty"`
	Location       string `json:"location"`
	Text           string `json:"text"`
	Privacy        string `json:"privacy"`
	UnlockDateTime string `json:"unlock_date_time,omitempty"`
}

// UpdateCapsuleRequest carries the partial-update fields of the capsule-edit
// endpoint. Empty strings mean "leave the stored value unchanged".
type UpdateCapsuleRequest struct {
	CapsuleID    int64  `json:"capsule_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	StoryText    string `json:"story_text"`
	DateOfMemory string `json:"date_of_memory"`
	LocationName string `json:"location_name"`
	CapsuleType  string `json:"capsule_type"`
}

// UpdateProfileRequest is the body of the profile-update endpoint.
// BirthDate is a client-submitted date string; empty means "not provided".
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	BirthDate string `json:"birth_date"`
	Location  string `json:"location"`
}

// ShareCapsuleRequest is the body of the share endpoint. Email identifies the
// recipient; Message is optional.
type ShareCapsuleRequest struct {
	Email   string `json:"email"`
	Message string `json:"message,omitempty"`
}

// DeleteMediaRequest is the body of the media-delete endpoint.
type DeleteMediaRequest struct {
	MediaIDs []int64 `json:"media_ids"`
}
