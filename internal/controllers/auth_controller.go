package controllers

import (
	"github.com/gofiber/fiber/v2"

	"social_workspace/dto"
	"social_workspace/internal/services"
)

// Signup godoc
// @Summary      Sign up
// @Description  Creates an account and returns a bearer token valid for one hour
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupReq  true  "email and password"
// @Success      201   {object}  dto.SignupResp
// @Failure      422   {object}  dto.ErrorResponse "invalid input or email taken"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users/signup [post]
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var body dto.SignupReq
	if err := c.BodyParser(&body); err != nil {
		return invalidBody()
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Auth.Signup(ctx, body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SignupResp{
		UserID: res.UserID,
		Email:  res.Email,
		Token:  res.Token,
	})
}

// Login godoc
// @Summary      Log in
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginReq  true  "email and password"
// @Success      201   {object}  dto.LoginResp
// @Failure      401   {object}  dto.ErrorResponse "invalid credentials"
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *Handlers) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return services.ErrInvalidCredentials
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LoginResp{
		Message: "Logged in!",
		UserID:  res.UserID,
		Email:   res.Email,
		Token:   res.Token,
	})
}
