package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/errs"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/repositories"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) repositories.SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Save(ctx context.Context, session *entities.Session) error {
	sessionModel := SessionModel{
		SID:       session.SID,
		UserID:    session.UserID,
		Expires:   session.Expires,
		Data:      session.Data,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sid"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "expires", "data", "updated_at"}),
		}).
		Create(&sessionModel).Error
}

func (r *SessionRepository) FindBySID(ctx context.Context, sid string) (*entities.Session, error) {
	var sessionModel SessionModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&sessionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	return &entities.Session{
		SID:       sessionModel.SID,
		UserID:    sessionModel.UserID,
		Expires:   sessionModel.Expires,
		Data:      sessionModel.Data,
		CreatedAt: sessionModel.CreatedAt,
		UpdatedAt: sessionModel.UpdatedAt,
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).Where("sid = ?", sid).Delete(&SessionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires < ?", time.Now()).
		Delete(&SessionModel{})
	return result.RowsAffected, result.Error
}
