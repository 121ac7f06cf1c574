package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Username:     userEntity.Username,
		Email:        userEntity.Email,
		PasswordHash: userEntity.PasswordHash,
		CreatedAt:    userEntity.CreatedAt,
		UpdatedAt:    userEntity.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, r.translateDuplicate(ctx, err, userEntity.Username, userEntity.Email, 0)
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	var userModel UserModel
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) ListOthers(ctx context.Context, excludeID uint) ([]*entities.User, error) {
	var userModels []UserModel
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order("username asc").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	updates := map[string]interface{}{
		"username":      userEntity.Username,
		"email":         userEntity.Email,
		"password_hash": userEntity.PasswordHash,
		"updated_at":    userEntity.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", userEntity.ID).
		Updates(updates)
	if result.Error != nil {
		return nil, r.translateDuplicate(ctx, result.Error, userEntity.Username, userEntity.Email, userEntity.ID)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrNotFound
	}

	return r.FindByID(ctx, userEntity.ID)
}

// Delete removes the user row and every follow edge referencing it in one
// transaction. The FK cascade in the schema remains as backstop; doing it
// explicitly keeps the behavior identical on test databases that ship with
// foreign keys off.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&FollowModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&UserModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrNotFound
		}
		return nil
	})
}

// translateDuplicate maps a unique-constraint violation to the same duplicate
// error the pre-check would have reported, by probing which field collided.
// excludeID skips the caller's own row on profile updates.
func (r *UserRepository) translateDuplicate(ctx context.Context, err error, username, email string, excludeID uint) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	var usernameTaken, emailTaken bool
	var count int64
	if probe := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count); probe.Error == nil && count > 0 {
		usernameTaken = true
	}
	count = 0
	if probe := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count); probe.Error == nil && count > 0 {
		emailTaken = true
	}

	switch {
	case usernameTaken && emailTaken:
		return errs.ErrDuplicateUser
	case emailTaken:
		return errs.ErrDuplicateEmail
	default:
		return errs.ErrDuplicateUsername
	}
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:           userModel.ID,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
	}
}
