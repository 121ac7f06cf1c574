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

type SocialService struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
}

func NewSocialService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) interfaces.SocialService {
	return &SocialService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// ToggleFollow flips the edge (follower, target): deletes it when present,
// creates it when absent. The check and the act are not wrapped in a
// transaction; the composite unique index is the backstop, and an insert that
// loses a race reads as the followed outcome (the edge exists either way).
func (s *SocialService) ToggleFollow(ctx context.Context, toggleCommand *command.ToggleFollowCommand) (*command.ToggleFollowCommandResult, error) {
	if toggleCommand.FollowerID == toggleCommand.TargetID {
		infrastructure.FollowToggles.WithLabelValues("rejected").Inc()
		return nil, errs.ErrSelfFollow
	}

	if _, err := s.userRepo.FindByID(ctx, toggleCommand.FollowerID); err != nil {
		infrastructure.FollowToggles.WithLabelValues("rejected").Inc()
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, toggleCommand.TargetID); err != nil {
		infrastructure.FollowToggles.WithLabelValues("rejected").Inc()
		return nil, err
	}

	exists, err := s.followRepo.Exists(ctx, toggleCommand.FollowerID, toggleCommand.TargetID)
	if err != nil {
		return nil, err
	}

	if exists {
		err := s.followRepo.Delete(ctx, toggleCommand.FollowerID, toggleCommand.TargetID)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		// A concurrent unfollow winning the race leaves the same end state.
		infrastructure.FollowToggles.WithLabelValues("unfollowed").Inc()
		return &command.ToggleFollowCommandResult{Outcome: command.OutcomeUnfollowed}, nil
	}

	follow, err := entities.NewFollow(toggleCommand.FollowerID, toggleCommand.TargetID)
	if err != nil {
		return nil, err
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		if errors.Is(err, errs.ErrDuplicateFollow) {
			// Lost a race against an identical toggle; the edge is there,
			// which is what this caller asked for.
			infrastructure.FollowToggles.WithLabelValues("followed").Inc()
			return &command.ToggleFollowCommandResult{Outcome: command.OutcomeFollowed}, nil
		}
		return nil, err
	}

	infrastructure.FollowToggles.WithLabelValues("followed").Inc()
	return &command.ToggleFollowCommandResult{Outcome: command.OutcomeFollowed}, nil
}

func (s *SocialService) ListOthers(ctx context.Context, userID uint) (*query.UserListQueryResult, error) {
	users, err := s.userRepo.ListOthers(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	followingSet := make(map[uint]bool, len(followingIDs))
	for _, id := range followingIDs {
		followingSet[id] = true
	}

	return &query.UserListQueryResult{
		Users:        mapper.NewUserResultsFromEntities(users),
		FollowingIDs: followingSet,
	}, nil
}

func (s *SocialService) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followRepo.ListFollowingIDs(ctx, userID)
}
