package query

import "user-registry/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult
}

type UserListQueryResult struct {
	Result []*common.UserResult
}
