package http

import "errors"

// Errors produced while reading the Authorization header. The auth
// middleware reports their text verbatim in the 401 envelope.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrEmptyToken                 = errors.New("empty token in `Authorization` header")
)
