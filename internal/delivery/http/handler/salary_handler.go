package handler

import (
	"errors"

	"career-path/internal/delivery/http/middleware"
	"career-path/internal/pkg/response"
	"career-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SalaryHandler struct {
	uc usecase.SalaryUsecase
}

func NewSalaryHandler(uc usecase.SalaryUsecase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

func (h *SalaryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/trends", h.Trends)
}

func (h *SalaryHandler) Trends(c fiber.Ctx) error {
	techStack := c.Query("techStack")
	if techStack == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "techStack is required", nil)
	}

	result, err := h.uc.Trends(c.Context(), techStack)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "techStack is required", err)
		case errors.Is(err, usecase.ErrMissingCredentials):
			return middleware.NewAppError(fiber.StatusInternalServerError, "Missing Adzuna credentials in server environment", err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to fetch salary trends", err)
		}
	}

	return response.JSON(c, fiber.StatusOK, result)
}
