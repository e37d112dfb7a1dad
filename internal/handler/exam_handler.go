package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/service"
	"github.com/quizroom/quizroom-api/internal/utils"
)

// ExamHandler serves the exam list students pick from.
type ExamHandler struct {
	service service.ExamService
	logger  zerolog.Logger
}

// NewExamHandler builds an exam handler instance.
func NewExamHandler(service service.ExamService, logger zerolog.Logger) *ExamHandler {
	return &ExamHandler{
		service: service,
		logger:  logger.With().Str("component", "exam_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *ExamHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *ExamHandler) list(c *fiber.Ctx) error {
	exams, err := h.service.ListActive(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list exams")
		return utils.SendError(c, fiber.StatusBadGateway, "unable to load exams, please try again")
	}

	return utils.SendSuccess(c, "exams retrieved", exams)
}
