package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"notekeep/internal/utils/apierror"
)

// CheckUsername applies the same shape rule the login contract uses to a
// bare path parameter. Returns the trimmed value used as the store key.
func CheckUsername(validate *validator.Validate, username string) (string, apierror.ErrorResponse) {
	username = strings.TrimSpace(username)
	if err := validate.Var(username, "required,min=3,max=20,usernamechars"); err != nil {
		return "", apierror.InvalidUsernameError
	}
	return username, nil
}
