package handler

import (
	"errors"

	"career-path/internal/delivery/http/dto"
	"career-path/internal/delivery/http/middleware"
	"career-path/internal/pkg/response"
	"career-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobsUsecase
}

func NewJobsHandler(uc usecase.JobsUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/live", h.Live)
}

func (h *JobsHandler) Live(c fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "role is required", nil)
	}

	result, err := h.uc.LiveJobs(c.Context(), role)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "role is required", err)
		}
		return middleware.NewAppError(fiber.StatusBadGateway, "Failed to fetch jobs", err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewJobListingResponses(result.Listings))
}
