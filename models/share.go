package models

import "time"

// Share grants a recipient read access to a capsule. A given
// (capsule, recipient) pair is shared at most once; the database enforces
// this with a unique constraint and duplicate attempts are rejected.
type Share struct {
	ShareID   int64 `json:"share_id"`
	CapsuleID int64 `json:"capsule_id"`

	// SharedBy is the owner issuing the grant; SharedWith the recipient.
	// They are always distinct users.
	SharedBy   int64 `json:"shared_by"`
	SharedWith int64 `json:"shared_with"`

	// Message is an optional note shown to the recipient.
	Message string `json:"message"`

	SharedAt time.Time `json:"shared_at"`
}

// TableName returns the name of the database table
// associated with the Share model.
func (s Share) TableName() string {
	return "shared_capsules"
}
