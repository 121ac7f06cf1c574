package command

import (
	"time"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/common"
)

type LoginUserCommand struct {
	// Identifier is the username or the email, either works.
	Identifier string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
}

type LoginUserCommandResult struct {
	SessionToken string             `json:"-"`
	Expires      time.Time          `json:"expires"`
	User         *common.UserResult `json:"user"`
}
