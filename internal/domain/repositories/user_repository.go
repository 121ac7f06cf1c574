package repositories

import (
	"context"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// FindByUsernameOrEmail resolves a login identifier, which may be either field.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error)
	// ListOthers returns every user except the excluded one, ordered by username.
	ListOthers(ctx context.Context, excludeID uint) ([]*entities.User, error)
	Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	// Delete removes the user and cascades to all follow edges either side.
	Delete(ctx context.Context, id uint) error
}
