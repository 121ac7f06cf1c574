package entities

import (
	"regexp"
	"time"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	ID           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	Email        string
	PasswordHash string
}

func NewUser(username, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// identityProblems checks the identity fields shared by registration and
// profile edits.
func identityProblems(username, email string) errs.ValidationErrors {
	var problems errs.ValidationErrors
	if username == "" {
		problems = append(problems, "username cannot be empty")
	}
	if email == "" {
		problems = append(problems, "email cannot be empty")
	} else if !emailPattern.MatchString(email) {
		problems = append(problems, "must be a valid email address")
	}
	return problems
}

// ValidateIdentity reports every problem with the username and email, or nil.
func ValidateIdentity(username, email string) error {
	if problems := identityProblems(username, email); len(problems) > 0 {
		return problems
	}
	return nil
}

func (u *User) validate() error {
	problems := identityProblems(u.Username, u.Email)
	if u.PasswordHash == "" {
		problems = append(problems, "password cannot be empty")
	}
	if len(problems) > 0 {
		return problems
	}
	return nil
}

func (u *User) UpdateProfile(username, email string) error {
	u.Username = username
	u.Email = email
	u.UpdatedAt = time.Now()
	return u.validate()
}
