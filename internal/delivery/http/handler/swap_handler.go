package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/pkg/validator"
	"skill-swap/internal/usecase"
)

type SwapHandler struct {
	uc usecase.SwapUsecase
}

type createSwapRequest struct {
	RecipientID    string `json:"recipientId" validate:"required,uuid"`
	SkillOffered   string `json:"skillOffered" validate:"required"`
	SkillRequested string `json:"skillRequested" validate:"required"`
	Message        string `json:"message"`
}

func NewSwapHandler(uc usecase.SwapUsecase) *SwapHandler {
	return &SwapHandler{uc: uc}
}

func (h *SwapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/swaps")
	grp.Post("/", h.Create)
	grp.Get("/", h.List)
	grp.Put("/:request_id/cancel", h.Cancel)
	grp.Put("/:request_id/accept", h.Accept)
	grp.Put("/:request_id/reject", h.Reject)
}

func (h *SwapHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createSwapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if fields := validator.Struct(req); fields != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Recipient ID, skill offered, and skill requested are required", fields, nil)
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// Boundary precondition: the lifecycle itself never re-checks identity
	// equality.
	if recipientID == userID {
		return middleware.NewAppError(fiber.StatusBadRequest, "Cannot create a swap request to yourself", nil, nil)
	}

	view, err := h.uc.Create(c.Context(), usecase.CreateSwapInput{
		RequesterID:    userID,
		RecipientID:    recipientID,
		SkillOffered:   req.SkillOffered,
		SkillRequested: req.SkillRequested,
		Message:        req.Message,
	})
	if err != nil {
		return mapSwapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Swap request created successfully", view)
}

func (h *SwapHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	if page < 1 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Page must be a positive integer", nil, nil)
	}
	if limit < 1 || limit > 50 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Limit must be between 1 and 50", nil, nil)
	}

	res, err := h.uc.List(c.Context(), usecase.SwapListParams{
		UserID: userID,
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Type:   c.Query("type", "all"),
	})
	if err != nil {
		return mapSwapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SwapHandler) Cancel(c fiber.Ctx) error {
	return h.transition(c, h.uc.Cancel, "Swap request cancelled successfully")
}

func (h *SwapHandler) Accept(c fiber.Ctx) error {
	return h.transition(c, h.uc.Accept, "Swap request accepted successfully")
}

func (h *SwapHandler) Reject(c fiber.Ctx) error {
	return h.transition(c, h.uc.Reject, "Swap request rejected successfully")
}

func (h *SwapHandler) transition(
	c fiber.Ctx,
	op func(ctx context.Context, requestID, actingUserID uuid.UUID) (usecase.SwapRequestView, error),
	successMessage string,
) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := uuid.Parse(c.Params("request_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := op(c.Context(), requestID, userID)
	if err != nil {
		return mapSwapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, successMessage, view)
}

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

func mapSwapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrRecipientNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Recipient user not found", nil, err)
	case errors.Is(err, usecase.ErrRecipientUnavailable):
		return middleware.NewAppError(fiber.StatusForbidden, "Cannot send request to this user", nil, err)
	case errors.Is(err, usecase.ErrSkillValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skills. Skills must be from your offered/wanted lists", nil, err)
	case errors.Is(err, usecase.ErrDuplicateRequest):
		return middleware.NewAppError(fiber.StatusConflict, "A swap request already exists between these users for these skills", nil, err)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
	case errors.Is(err, usecase.ErrNotRequester):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the requester can cancel this request", nil, err)
	case errors.Is(err, usecase.ErrNotRecipient):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the recipient can respond to this request", nil, err)
	case errors.Is(err, usecase.ErrRequestNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Request is no longer pending", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
