package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	errInternalServer     = "Internal server error"
	errEmailTaken         = "Email already in use"
	errUsernameTaken      = "Username already in use"
	errInvalidCredentials = "Invalid credentials"
	errRecipeNotFound     = "Recipe not found"
	errRecipeUnavailable  = "Recipe not found or unauthorized"
)

// bindError turns a gin binding failure into a response payload. Validator
// failures become per-field messages; anything else (malformed JSON, wrong
// types) is reported as-is.
func bindError(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind().String() == "slice" {
			return "must have at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be positive"
	default:
		return "is invalid"
	}
}
