package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social_workspace/dto"
	"social_workspace/internal/services"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &services.ValidationError{Message: "bad"}, fiber.StatusUnprocessableEntity},
		{"email taken", services.ErrEmailTaken, fiber.StatusUnprocessableEntity},
		{"credentials", services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{"user missing", services.ErrUserNotFound, fiber.StatusNotFound},
		{"post missing", fmt.Errorf("wrapped: %w", services.ErrPostNotFound), fiber.StatusNotFound},
		{"not owner", services.ErrNotPostOwner, fiber.StatusForbidden},
		{"already liked", services.ErrAlreadyLiked, fiber.StatusConflict},
		{"not liked", services.ErrNotLiked, fiber.StatusConflict},
		{"fiber 401", fiber.NewError(fiber.StatusUnauthorized, "nope"), fiber.StatusUnauthorized},
		{"fiber 503", fiber.NewError(fiber.StatusServiceUnavailable, "db down at 10.0.0.3"), fiber.StatusServiceUnavailable},
		{"unknown", errors.New("mongo: connection reset by 10.0.0.3"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
			if status >= fiber.StatusInternalServerError {
				assert.Equal(t, msgInternal, msg)
			}
		})
	}
}

func TestErrorHandlerKeepsStreamedBody(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/stream", func(c *fiber.Ctx) error {
		c.Status(fiber.StatusOK)
		c.Context().SetBodyStream(strings.NewReader("partial export"), -1)
		return errors.New("late failure")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/stream", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "partial export", string(raw))
	assert.NotContains(t, string(raw), msgInternal)
}

func TestErrorHandlerBody(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("secret internals")
	})
	app.Use(NotFound)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusInternalServerError, body.Status)
	assert.Equal(t, msgInternal, body.Message)
	assert.NotContains(t, string(raw), "secret internals")

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, msgRouteNotFound, body.Message)
}
