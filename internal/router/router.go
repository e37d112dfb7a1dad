package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quizroom/quizroom-api/internal/config"
	"github.com/quizroom/quizroom-api/internal/handler"
	"github.com/quizroom/quizroom-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ExamHandler *handler.ExamHandler
	QuizHandler *handler.QuizHandler
	SeedHandler *handler.SeedHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	exams := api.Group("/exams")
	if deps.ExamHandler != nil {
		deps.ExamHandler.Register(exams)
	}
	if deps.QuizHandler != nil {
		deps.QuizHandler.Register(exams)
	}

	if deps.SeedHandler != nil {
		seed := api.Group("/seed")
		deps.SeedHandler.Register(seed)
	}

	app.Get("/metrics", observability.MetricsHandler())
}
