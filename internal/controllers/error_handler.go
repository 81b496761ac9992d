package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/logger"
	"social_workspace/internal/services"
)

const (
	msgInternal      = "Something went wrong, please try again later."
	msgRouteNotFound = "Could not find this route."
)

// Classify maps an error to the status and message shown to the client.
func Classify(err error) (int, string) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusUnprocessableEntity, verr.Error()
	}

	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusUnprocessableEntity, "User exists already, please login instead."
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid credentials, could not log you in."
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "Could not find user for the provided id."
	case errors.Is(err, services.ErrPostNotFound):
		return fiber.StatusNotFound, "Could not find post for the provided id."
	case errors.Is(err, services.ErrNotPostOwner):
		return fiber.StatusForbidden, "You are not allowed to delete this post."
	case errors.Is(err, services.ErrAlreadyLiked):
		return fiber.StatusConflict, "Already liked."
	case errors.Is(err, services.ErrNotLiked):
		return fiber.StatusConflict, "Not liked."
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		if ferr.Code >= fiber.StatusInternalServerError {
			return ferr.Code, msgInternal
		}
		return ferr.Code, ferr.Message
	}
	return fiber.StatusInternalServerError, msgInternal
}

// ErrorHandler is the single place errors become responses. When the
// handler already attached a streamed body the error is only logged; that
// is the one started-response case fasthttp exposes before the response is
// flushed, ordinary bodies set earlier are replaced by the error body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := Classify(err)

	l := logger.Ctx(c.UserContext())
	if status >= fiber.StatusInternalServerError {
		l.Error().Err(err).Str(logger.FieldPath, c.Path()).Msg("request failed")
	}

	// a streamed body is already on its way out; don't write over it
	if c.Response().IsBodyStream() {
		l.Warn().Err(err).Msg("error after response started")
		return nil
	}

	return c.Status(status).JSON(dto.ErrorResponse{Message: msg, Status: status})
}

// NotFound terminates the chain for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, msgRouteNotFound)
}
