package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmailTaken         = errors.New("user exists already")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotPostOwner       = errors.New("requester does not own the post")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post not liked")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Fields, ", ") + ")"
}

const invalidInputMsg = "Invalid inputs passed, please check your data."

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &ValidationError{Message: invalidInputMsg, Fields: fields}
	}
	return &ValidationError{Message: invalidInputMsg}
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
