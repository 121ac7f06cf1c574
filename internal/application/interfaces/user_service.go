package interfaces

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/query"
)

type UserService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	LogoutUser(ctx context.Context, sessionToken string)
	UpdateProfile(ctx context.Context, updateCommand *command.UpdateProfileCommand) (*command.UpdateProfileCommandResult, error)
	FindUserByID(ctx context.Context, id uint) (*query.UserQueryResult, error)
	DeleteUser(ctx context.Context, id uint) error
}
