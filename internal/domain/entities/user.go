package entities

import "errors"

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
)

type User struct {
	Id       uint
	Username string
	Email    string
}

// NewUser leaves Id zero; the store assigns it on insert.
func NewUser(username, email string) *User {
	return &User{
		Username: username,
		Email:    email,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	return nil
}
