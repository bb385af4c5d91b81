package domain

import "errors"

// ErrUserNotFound indicates the durable identity record no longer exists,
// e.g. the account was deleted after the token was issued.
var ErrUserNotFound = errors.New("user not found")
