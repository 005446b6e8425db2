package services

import (
	"user-registry/internal/application/command"
	"user-registry/internal/application/interfaces"
	"user-registry/internal/application/mapper"
	"user-registry/internal/application/query"
	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) interfaces.UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser deliberately performs no existence pre-check: the insert itself
// is the uniqueness check, so two concurrent creates with the same username
// serialize on the store's unique index and exactly one of them commits.
func (s *UserService) CreateUser(createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error) {
	newUser := entities.NewUser(createCommand.Username, createCommand.Email)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	return &command.CreateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *UserService) FindUserById(id uint) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(id)
	if err != nil {
		return nil, err
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *UserService) ListUsers() (*query.UserListQueryResult, error) {
	users, err := s.userRepo.ListByUsername()
	if err != nil {
		return nil, err
	}

	return &query.UserListQueryResult{
		Result: mapper.NewUserResultsFromEntities(users),
	}, nil
}
