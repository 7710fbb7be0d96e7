package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// UsernameChars allows only letters, digits and underscores. Length is
// enforced separately through the min/max tags.
func UsernameChars(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return usernameRegex.MatchString(field.String())
}
