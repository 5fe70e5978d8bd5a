package models

import "time"

// Profile is the optional 1:1 extension of a [User]. It is created lazily on
// the first profile update and holds the fields that do not belong to the
// authentication record.
type Profile struct {
	ProfileID int64 `json:"-"`
	UserID    int64 `json:"-"`

	// Bio is free-form text shown on the profile page.
	Bio string `json:"bio"`

	// BirthDate is optional; nil when the user has not provided it.
	BirthDate *time.Time `json:"birth_date,omitempty"`

	// Location is a free-form place name.
	Location string `json:"location"`

	// ProfilePicture is the stored path of the profile image, relative to the
	// application root (e.g. "uploads/profiles/profile_7_xxx.jpg").
	// Empty when no picture has been uploaded.
	ProfilePicture string `json:"profile_picture"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "user_profiles"
}

// ProfileUpdate carries the fields accepted by the profile-update operation.
// FirstName and LastName are required; the rest overwrite stored values as-is.
type ProfileUpdate struct {
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Bio       string     `json:"bio"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Location  string     `json:"location"`
}

// CapsuleStats aggregates per-user capsule counts for the profile page.
// Soft-deleted capsules are excluded from every count.
type CapsuleStats struct {
	Total   int64 `json:"total_capsules"`
	Private int64 `json:"private_count"`
	Shared  int64 `json:"shared_count"`
	Future  int64 `json:"future_count"`
}
