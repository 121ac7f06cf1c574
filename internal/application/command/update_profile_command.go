package command

import "github.com/NehaP156/linkedln-clone-gemini/internal/application/common"

type UpdateProfileCommand struct {
	UserID             uint   `json:"-"`
	Username           string `json:"username" form:"username"`
	Email              string `json:"email" form:"email"`
	NewPassword        string `json:"newPassword" form:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword" form:"confirmNewPassword"`
}

type UpdateProfileCommandResult struct {
	Result *common.UserResult `json:"result"`
}
