package errs

import (
	"errors"
	"strings"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	// ErrDuplicateUser is the aggregate outcome when both the username and the
	// email collide in a single registration attempt.
	ErrDuplicateUser   = errors.New("username and email already exist")
	ErrDuplicateFollow = errors.New("follow already exists")
	ErrNotFound        = errors.New("record not found")
	ErrSelfFollow      = errors.New("users cannot follow themselves")
	ErrUnauthorized    = errors.New("authentication required")
	ErrTooManyAttempts = errors.New("too many attempts, please try again later")
)

// ValidationErrors collects every field-level problem of a request so the
// caller can report them together instead of failing on the first one.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// AsValidation unwraps err into a ValidationErrors list if it is one.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// IsDuplicate reports whether err is any of the duplicate-constraint errors.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrDuplicateEmail) ||
		errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrDuplicateFollow)
}
