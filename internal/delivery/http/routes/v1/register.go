package v1

import (
	"career-path/internal/delivery/http/handler"
	"career-path/internal/delivery/http/middleware"
	"career-path/internal/pkg/jwt"
	"career-path/internal/usecase"
	useruc "career-path/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the wired usecases into route registration. The container
// builds them once; v1 only decides which paths are public and which sit
// behind the auth middleware.
type Deps struct {
	JWT      jwt.Service
	Auth     usecase.AuthUsecase
	User     *useruc.Service
	Jobs     usecase.JobsUsecase
	Salary   usecase.SalaryUsecase
	SkillGap usecase.SkillGapUsecase
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	handler.NewAuthHandler(d.Auth).RegisterRoutes(r.Group("/auth"))
	handler.NewJobsHandler(d.Jobs).RegisterRoutes(r.Group("/jobs"))
	handler.NewSalaryHandler(d.Salary).RegisterRoutes(r.Group("/salary"))

	protected := r.Group("", authMw.RequireAuth())
	handler.NewUserHandler(d.User).RegisterRoutes(protected.Group("/users"))
	handler.NewSkillGapHandler(d.SkillGap).RegisterRoutes(protected.Group("/skill-gap"))
}
