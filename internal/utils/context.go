// Package utils holds small helpers shared across layers: typed context
// keys, JSON response writing, JWT issuance and validation, unique name
// generation and the resty client wrapper.
package utils

import (
	"context"
)

// contextKey is unexported so no other package can collide with keys
// defined here.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's id, placed in the
// request context by the auth middleware and read back with
// GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user id stored in ctx. ok is false
// when the value is absent or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
