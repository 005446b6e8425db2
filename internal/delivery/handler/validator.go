package handler

import "github.com/go-playground/validator/v10"

// FormValidator plugs validator/v10 into echo's Validator hook.
type FormValidator struct {
	validator *validator.Validate
}

func NewFormValidator() *FormValidator {
	return &FormValidator{validator: validator.New()}
}

func (v *FormValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
