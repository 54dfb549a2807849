package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/pkg/validator"
	"skill-swap/internal/usecase"
	ucauth "skill-swap/internal/usecase/auth"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type availabilityPayload struct {
	Weekdays   bool   `json:"weekdays"`
	Weekends   bool   `json:"weekends"`
	Custom     bool   `json:"custom"`
	CustomText string `json:"customText"`
}

type registerRequest struct {
	Name            string               `json:"name" validate:"required,max=100"`
	Email           string               `json:"email" validate:"required,email"`
	Password        string               `json:"password" validate:"required,min=6"`
	ConfirmPassword string               `json:"confirmPassword" validate:"required,eqfield=Password"`
	PetName         string               `json:"petName" validate:"required,max=100"`
	Location        string               `json:"location" validate:"required,max=200"`
	SkillsOffered   []string             `json:"skillsOffered"`
	SkillsWanted    []string             `json:"skillsWanted"`
	Availability    *availabilityPayload `json:"availability"`
	IsPublic        *bool                `json:"isPublic"`
	ProfilePhoto    *string              `json:"profilePhoto" validate:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email   string `json:"email" validate:"required,email"`
	PetName string `json:"petName" validate:"required"`
}

type resetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	PetName         string `json:"petName" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := validator.Struct(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, nil)
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	usr, access, refresh, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		PetName:       req.PetName,
		Location:      req.Location,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  availabilityFromPayload(req.Availability),
		IsPublic:      isPublic,
		ProfilePhoto:  req.ProfilePhoto,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user":          dto.NewUserResponse(usr),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusCreated, "User registered successfully", data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := validator.Struct(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, nil)
	}

	usr, access, refresh, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"user":          dto.NewUserResponse(usr),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, "Login successful", data)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := validator.Struct(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, nil)
	}

	if err := h.uc.ForgotPassword(c.Context(), req.Email, req.PetName); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Pet name verified successfully", nil)
}

func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := validator.Struct(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", fields, nil)
	}

	if err := h.uc.ResetPassword(c.Context(), ucauth.ResetPasswordInput{
		Email:       req.Email,
		PetName:     req.PetName,
		NewPassword: req.NewPassword,
	}); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Password reset successfully", nil)
}

func availabilityFromPayload(p *availabilityPayload) *user.Availability {
	if p == nil {
		return nil
	}
	return &user.Availability{
		Weekdays:   p.Weekdays,
		Weekends:   p.Weekends,
		Custom:     p.Custom,
		CustomText: p.CustomText,
	}
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "User with this email already exists", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucauth.ErrAccountNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, "No account found with this email address", nil, err)
	case errors.Is(err, ucauth.ErrPetNameMismatch):
		return middleware.NewAppError(fiber.StatusBadRequest, "The pet name you entered does not match our records", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
