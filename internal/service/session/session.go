package session

import "errors"

// ErrNotFound covers unknown, expired and revoked sessions alike.
var ErrNotFound = errors.New("session not found")
