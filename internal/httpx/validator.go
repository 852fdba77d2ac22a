package httpx

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookshelf/internal/apperr"
)

var validate = validator.New()

// ValidateStruct validates request payloads declared with validator tags and
// folds every field failure into a single validation error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var messages []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		field = strings.ToLower(field[:1]) + field[1:]
		tag := fieldErr.Tag()
		param := fieldErr.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must have at least %s entries", field, param)
		case "max":
			message = fmt.Sprintf("%s must have at most %s entries", field, param)
		case "datetime":
			message = fmt.Sprintf("%s must match the format %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		messages = append(messages, message)
	}

	return apperr.Validation(strings.Join(messages, "; "))
}
