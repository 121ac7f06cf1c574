package query

import "github.com/NehaP156/linkedln-clone-gemini/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

// UserListQueryResult carries everything the users page needs: the other
// users in username order plus the set of ids the caller already follows.
type UserListQueryResult struct {
	Users        []*common.UserResult `json:"users"`
	FollowingIDs map[uint]bool        `json:"following_ids"`
}
