package models

import (
	"strings"
	"time"
)

// CapsuleType is the privacy level of a capsule. It also determines whether
// the capsule participates in timed unlocking.
type CapsuleType string

const (
	// CapsuleTypePrivate capsules are visible to the owner only.
	CapsuleTypePrivate CapsuleType = "private"

	// CapsuleTypeShared capsules may be granted to other users via shares.
	CapsuleTypeShared CapsuleType = "shared"

	// CapsuleTypeFuture capsules stay locked until their open date passes.
	CapsuleTypeFuture CapsuleType = "future"
)

// Valid reports whether t is one of the known capsule types.
func (t CapsuleType) Valid() bool {
	switch t {
	case CapsuleTypePrivate, CapsuleTypeShared, CapsuleTypeFuture:
		return true
	}
	return false
}

// NormalizeCapsuleType lowers raw and maps it onto a known [CapsuleType],
// falling back to [CapsuleTypePrivate] for unknown or empty values.
func NormalizeCapsuleType(raw string) CapsuleType {
	t := CapsuleType(strings.ToLower(raw))
	if !t.Valid() {
		return CapsuleTypePrivate
	}
	return t
}

// CapsuleStatus is the persisted lifecycle marker of a capsule.
type CapsuleStatus string

const (
	// CapsuleStatusSealed marks a regular capsule.
	CapsuleStatusSealed CapsuleStatus = "sealed"

	// CapsuleStatusLocked marks a future capsule that carries an unlock time.
	// Whether it is actually inaccessible is a pure function of the open date
	// and the wall clock, evaluated on every read.
	CapsuleStatusLocked CapsuleStatus = "locked"
)

// Capsule is a user-owned memory record. A capsule owns zero or more media
// attachments and may be shared with other users.
type Capsule struct {
	CapsuleID int64 `json:"capsule_id"`
	UserID    int64 `json:"user_id"`

	// Title is the only field required at creation time.
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	StoryText    string        `json:"story_text"`
	DateOfMemory *time.Time    `json:"date_of_memory,omitempty"`
	LocationName string        `json:"location_name"`
	CapsuleType  CapsuleType   `json:"capsule_type"`
	OpenDate     time.Time     `json:"open_date"`
	Status       CapsuleStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// IsDeleted and DeletedAt implement soft deletion: the row stays in the
	// database but is excluded from lists and detail reads.
	IsDeleted bool       `json:"-"`
	DeletedAt *time.Time `json:"-"`

	// Media is the capsule's attachments ordered by display order, then
	// upload time. Populated by list and detail reads.
	Media []Media `json:"media"`
}

// TableName returns the name of the database table
// associated with the Capsule model.
func (c Capsule) TableName() string {
	return "capsules"
}

// LockedAt reports whether the capsule is inaccessible at the given instant.
// Only future-type capsules lock; other types are always visible to their
// owner. There is no stored "unlocked" state to flip — visibility is computed
// from OpenDate on each read.
func (c Capsule) LockedAt(now time.Time) bool {
	return c.CapsuleType == CapsuleTypeFuture && now.Before(c.OpenDate)
}

// CapsuleUpdate carries the partial-update fields of the capsule-edit
// operation. A nil field means "leave the stored value unchanged"; handlers
// translate empty submitted strings to nil before the update reaches the
// store layer.
type CapsuleUpdate struct {
	CapsuleID int64
	UserID    int64

	Title        *string
	Description  *string
	StoryText    *string
	DateOfMemory *time.Time
	LocationName *string
	CapsuleType  *CapsuleType
}

// Empty reports whether the update carries no field at all, in which case the
// operation is rejected before any SQL is built.
func (u CapsuleUpdate) Empty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.StoryText == nil &&
		u.DateOfMemory == nil &&
		u.LocationName == nil &&
		u.CapsuleType == nil
}
