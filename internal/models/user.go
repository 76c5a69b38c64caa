// Package models contains the persistent entities of the microblog core
// and their validation rules.
package models

import "time"

// User is the root entity. PasswordDigest is a bcrypt hash and is never
// empty once the user is persisted. RememberDigest holds the bcrypt hash
// of the current remember token, or nil when no persistent session is
// active; only the session service writes it.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordDigest string
	RememberDigest *string
	CreatedAt      time.Time
}

// RegisterParams carries the registration input. The password is transient:
// it is digested before storage and never persisted.
type RegisterParams struct {
	Name     string `validate:"required,max=50"`
	Email    string `validate:"required,max=255,email"`
	Password string `validate:"required,min=6,max=72"`
}
