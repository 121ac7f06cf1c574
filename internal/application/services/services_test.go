package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/command"
	"github.com/NehaP156/linkedln-clone-gemini/internal/application/interfaces"
	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/repositories"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure/db/postgres"
)

type testEnv struct {
	db       *gorm.DB
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	sessions repositories.SessionRepository

	sessionManager interfaces.SessionManager
	userService    interfaces.UserService
	socialService  interfaces.SocialService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	users := postgres.NewUserRepository(db)
	follows := postgres.NewFollowRepository(db)
	sessions := postgres.NewSessionRepository(db)

	sessionManager := NewSessionService(sessions, infrastructure.NewDisabledRedisService(), time.Hour)
	hasher := infrastructure.NewBcryptHasher(bcrypt.MinCost)

	return &testEnv{
		db:             db,
		users:          users,
		follows:        follows,
		sessions:       sessions,
		sessionManager: sessionManager,
		userService:    NewUserService(users, sessionManager, hasher, nil),
		socialService:  NewSocialService(users, follows),
	}
}

func (env *testEnv) register(t *testing.T, username, email, password string) uint {
	t.Helper()
	result, err := env.userService.RegisterUser(context.Background(), &command.RegisterUserCommand{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return result.Result.ID
}

func (env *testEnv) countSessions(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Table("sessions").Count(&count).Error)
	return count
}
