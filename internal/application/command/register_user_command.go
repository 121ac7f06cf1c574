package command

import "github.com/NehaP156/linkedln-clone-gemini/internal/application/common"

type RegisterUserCommand struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}
