package interfaces

import (
	"user-registry/internal/application/command"
	"user-registry/internal/application/query"
)

type UserService interface {
	CreateUser(createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	FindUserById(id uint) (*query.UserQueryResult, error)
	ListUsers() (*query.UserListQueryResult, error)
}
