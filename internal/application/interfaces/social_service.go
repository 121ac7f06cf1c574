package interfaces

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/query"
)

type SocialService interface {
	ToggleFollow(ctx context.Context, toggleCommand *command.ToggleFollowCommand) (*command.ToggleFollowCommandResult, error)
	ListOthers(ctx context.Context, userID uint) (*query.UserListQueryResult, error)
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
}
