package models

import "time"

// User represents an ETERNA account. It owns zero or more capsules and an
// optional profile extension.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// FirstName and LastName form the user's display name.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// JoinedDate is the timestamp when the account was created.
	JoinedDate time.Time `json:"joined_date"`

	// LastLogin is the timestamp of the most recent successful login.
	// Nil until the user logs in for the first time.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// IsActive reports whether the account may log in. Accounts are never
	// hard-deleted; deactivation clears this flag instead.
	IsActive bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
