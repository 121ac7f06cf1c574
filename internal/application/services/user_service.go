package services

import (
	"context"
	"errors"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/interfaces"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/mapper"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/query"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/repositories"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
)

const minPasswordLength = 6

// dummyHash keeps login latency flat when the identifier is unknown: the
// password is still verified against something so response time does not
// reveal whether the account exists. Never matches any real password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserService struct {
	userRepo       repositories.UserRepository
	sessionManager interfaces.SessionManager
	hasher         infrastructure.PasswordHasher
	rateLimiter    *infrastructure.RateLimiter
}

func NewUserService(
	userRepo repositories.UserRepository,
	sessionManager interfaces.SessionManager,
	hasher infrastructure.PasswordHasher,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.UserService {
	return &UserService{
		userRepo:       userRepo,
		sessionManager: sessionManager,
		hasher:         hasher,
		rateLimiter:    rateLimiter,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// All field problems surface together, not one per submit.
	problems := validatePassword(registerCommand.Password)
	if err := entities.ValidateIdentity(registerCommand.Username, registerCommand.Email); err != nil {
		if fieldProblems, ok := errs.AsValidation(err); ok {
			problems = append(problems, fieldProblems...)
		} else {
			return nil, err
		}
	}
	if len(problems) > 0 {
		infrastructure.Registrations.WithLabelValues("validation_failed").Inc()
		return nil, problems
	}

	// Duplicate pre-check. Two racing registrations can both pass it; the
	// unique indexes catch the loser and the repository reports the same
	// duplicate error this check would have.
	usernameTaken, err := s.identifierTaken(ctx, func() (*entities.User, error) {
		return s.userRepo.FindByUsername(ctx, registerCommand.Username)
	})
	if err != nil {
		return nil, err
	}
	emailTaken, err := s.identifierTaken(ctx, func() (*entities.User, error) {
		return s.userRepo.FindByEmail(ctx, registerCommand.Email)
	})
	if err != nil {
		return nil, err
	}

	switch {
	case usernameTaken && emailTaken:
		infrastructure.Registrations.WithLabelValues("duplicate").Inc()
		return nil, errs.ErrDuplicateUser
	case usernameTaken:
		infrastructure.Registrations.WithLabelValues("duplicate").Inc()
		return nil, errs.ErrDuplicateUsername
	case emailTaken:
		infrastructure.Registrations.WithLabelValues("duplicate").Inc()
		return nil, errs.ErrDuplicateEmail
	}

	passwordHash, err := s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, err
	}

	newUser := entities.NewUser(registerCommand.Username, registerCommand.Email, passwordHash)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		infrastructure.Registrations.WithLabelValues("validation_failed").Inc()
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		if errs.IsDuplicate(err) {
			infrastructure.Registrations.WithLabelValues("duplicate").Inc()
		} else {
			infrastructure.Registrations.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	infrastructure.Registrations.WithLabelValues("success").Inc()
	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if s.rateLimiter != nil && !s.rateLimiter.Allow(loginCommand.Identifier) {
		infrastructure.LoginAttempts.WithLabelValues("rate_limited").Inc()
		return nil, errs.ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByUsernameOrEmail(ctx, loginCommand.Identifier)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.hasher.Verify(loginCommand.Password, dummyHash)
			infrastructure.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			return nil, errs.ErrUnauthorized
		}
		infrastructure.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	if !s.hasher.Verify(loginCommand.Password, user.PasswordHash) {
		infrastructure.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, errs.ErrUnauthorized
	}

	token := s.sessionManager.Create()
	session, err := s.sessionManager.SetIdentity(ctx, token, user.ID, user.Username)
	if err != nil {
		infrastructure.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	infrastructure.LoginAttempts.WithLabelValues("success").Inc()
	return &command.LoginUserCommandResult{
		SessionToken: token,
		Expires:      session.Expires,
		User:         mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) LogoutUser(ctx context.Context, sessionToken string) {
	s.sessionManager.Destroy(ctx, sessionToken)
}

func (s *UserService) UpdateProfile(ctx context.Context, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error) {
	user, err := s.userRepo.FindByID(ctx, updateCommand.UserID)
	if err != nil {
		return nil, err
	}

	// Collect every problem before reporting, so the form shows them all.
	var problems errs.ValidationErrors

	if updateCommand.Username == "" {
		problems = append(problems, "username cannot be empty")
	} else if taken, err := s.takenByOther(ctx, updateCommand.UserID, func() (*entities.User, error) {
		return s.userRepo.FindByUsername(ctx, updateCommand.Username)
	}); err != nil {
		return nil, err
	} else if taken {
		problems = append(problems, "username already taken")
	}

	if updateCommand.Email == "" {
		problems = append(problems, "email cannot be empty")
	} else if taken, err := s.takenByOther(ctx, updateCommand.UserID, func() (*entities.User, error) {
		return s.userRepo.FindByEmail(ctx, updateCommand.Email)
	}); err != nil {
		return nil, err
	} else if taken {
		problems = append(problems, "email already taken")
	}

	changingPassword := updateCommand.NewPassword != "" || updateCommand.ConfirmNewPassword != ""
	if changingPassword {
		switch {
		case updateCommand.NewPassword == "" || updateCommand.ConfirmNewPassword == "":
			problems = append(problems, "both password fields are required to change the password")
		case updateCommand.NewPassword != updateCommand.ConfirmNewPassword:
			problems = append(problems, "passwords do not match")
		case len(updateCommand.NewPassword) < minPasswordLength:
			problems = append(problems, "password must be at least 6 characters")
		}
	}

	if err := user.UpdateProfile(updateCommand.Username, updateCommand.Email); err != nil {
		if fieldProblems, ok := errs.AsValidation(err); ok {
			for _, p := range fieldProblems {
				if !containsProblem(problems, p) {
					problems = append(problems, p)
				}
			}
		} else {
			return nil, err
		}
	}

	if len(problems) > 0 {
		return nil, problems
	}

	if changingPassword {
		passwordHash, err := s.hasher.Hash(updateCommand.NewPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = passwordHash
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.UpdateProfileCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *UserService) FindUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *UserService) identifierTaken(ctx context.Context, find func() (*entities.User, error)) (bool, error) {
	_, err := find()
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// takenByOther reports whether the looked-up user exists and is not the
// caller, so an unchanged username or email never collides with itself.
func (s *UserService) takenByOther(ctx context.Context, selfID uint, find func() (*entities.User, error)) (bool, error) {
	existing, err := find()
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != selfID, nil
}

func validatePassword(password string) errs.ValidationErrors {
	var problems errs.ValidationErrors
	if password == "" {
		problems = append(problems, "password cannot be empty")
	} else if len(password) < minPasswordLength {
		problems = append(problems, "password must be at least 6 characters")
	}
	return problems
}

func containsProblem(problems errs.ValidationErrors, problem string) bool {
	for _, p := range problems {
		if p == problem {
			return true
		}
	}
	return false
}
