package db

import (
	"errors"

	"gorm.io/gorm"

	"user-registry/internal/domain/entities"
	"user-registry/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user inside an explicit transaction. Uniqueness of the
// username is enforced by the store's unique index alone: under concurrent
// creates the first commit wins and the second insert fails here.
func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Username: userEntity.Username,
		Email:    userEntity.Email,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&userModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entities.ErrUsernameTaken
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

// FindById is a single lookup-or-fail query, not an existence check
// followed by a fetch.
func (r *UserRepository) FindById(id uint) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrUserNotFound
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) ListByUsername() ([]*entities.User, error) {
	var userModels []UserModel
	if err := r.db.Order("username ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.mapToEntity(&userModels[i]))
	}
	return users, nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:       userModel.Id,
		Username: userModel.Username,
		Email:    userModel.Email,
	}
}
