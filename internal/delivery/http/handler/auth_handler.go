package handler

import (
	"errors"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/response"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthSuccessResponse{
		Status:   fiber.StatusCreated,
		Message:  "User created successfully",
		Name:     res.Name,
		JwtToken: res.JwtToken,
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapAuthError(err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.AuthSuccessResponse{
		Status:   fiber.StatusOK,
		Message:  "User logged in successfully",
		Name:     res.Name,
		JwtToken: res.JwtToken,
	})
}

// Authenticate only runs when the auth gate has already accepted the
// token.
func (h *AuthHandler) Authenticate(c fiber.Ctx) error {
	return response.Message(c, fiber.StatusAccepted, "user authenticated")
}

func mapAuthError(err error) error {
	var fieldErr *usecase.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return middleware.NewAppError(fiber.StatusBadRequest, fieldErr.Message, nil)
	case errors.Is(err, usecase.ErrUserExists):
		return middleware.NewAppError(fiber.StatusForbidden, "User already exists with this Email", nil)
	case errors.Is(err, usecase.ErrIncorrectCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Incorrect credentials", nil)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
