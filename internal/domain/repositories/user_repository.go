package repositories

import "user-registry/internal/domain/entities"

type UserRepository interface {
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uint) (*entities.User, error)
	ListByUsername() ([]*entities.User, error)
}
