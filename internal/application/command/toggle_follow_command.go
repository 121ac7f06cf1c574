package command

type ToggleFollowCommand struct {
	FollowerID uint `json:"-"`
	TargetID   uint `json:"targetUserId" form:"targetUserId"`
}

// ToggleOutcome says which way the toggle went.
type ToggleOutcome string

const (
	OutcomeFollowed   ToggleOutcome = "followed"
	OutcomeUnfollowed ToggleOutcome = "unfollowed"
)

type ToggleFollowCommandResult struct {
	Outcome ToggleOutcome `json:"outcome"`
}
