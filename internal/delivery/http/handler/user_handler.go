package handler

import (
	"errors"

	"career-path/internal/delivery/http/dto"
	"career-path/internal/delivery/http/middleware"
	"career-path/internal/domain/user"
	"career-path/internal/pkg/response"
	ucuser "career-path/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	svc *ucuser.Service
}

func NewUserHandler(svc *ucuser.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
}

func (h *UserHandler) Me(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MsgUnauthorized, nil)
	}

	profile, err := h.svc.Me(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MsgInternalServerError, err)
	}

	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return response.JSON(c, fiber.StatusOK, dto.UserResponse{
		ID:     profile.ID.String(),
		Name:   profile.Name,
		Email:  profile.Email,
		Skills: skills,
	})
}
