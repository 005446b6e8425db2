package command

import "user-registry/internal/application/common"

type CreateUserCommand struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required"`
}

type CreateUserCommandResult struct {
	Result *common.UserResult
}
