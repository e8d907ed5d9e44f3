package table

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// SafeForUser implements safeError
func (u UserError) SafeForUser() bool {
	return true
}

// safeError is implemented by errors whose message can be shown to a player
type safeError interface {
	SafeForUser() bool
}

// IsUserError returns true if err, or an error it wraps, is safe to return in a response
func IsUserError(err error) bool {
	var s safeError
	return errors.As(err, &s) && s.SafeForUser()
}
