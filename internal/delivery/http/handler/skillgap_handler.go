package handler

import (
	"errors"
	"strconv"

	"career-path/internal/delivery/http/dto"
	"career-path/internal/delivery/http/middleware"
	"career-path/internal/pkg/response"
	"career-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const defaultHistoryLimit = 20

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze", h.Analyze)
	r.Get("/history", h.History)
}

func (h *SkillGapHandler) Analyze(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MsgUnauthorized, nil)
	}

	var req dto.AnalyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", err)
	}

	result, err := h.uc.Analyze(c.Context(), userID, req.TargetRole, req.Skills)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "targetRole is required", err)
		case errors.Is(err, usecase.ErrMissingCredentials):
			return middleware.NewAppError(fiber.StatusInternalServerError, "Missing Adzuna credentials in server environment", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MsgInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, result)
}

func (h *SkillGapHandler) History(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MsgUnauthorized, nil)
	}

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "limit must be a positive integer", err)
		}
		limit = n
	}

	records, err := h.uc.History(c.Context(), userID, limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MsgInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewAnalysisHistoryResponse(records))
}
