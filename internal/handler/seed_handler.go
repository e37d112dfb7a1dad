package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/dto"
	"github.com/quizroom/quizroom-api/internal/service"
	"github.com/quizroom/quizroom-api/internal/utils"
)

// SeedHandler exposes tooling endpoints for loading sample exam data.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register wires seed routes.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/exams", h.exams)
	router.Post("/questions", h.questions)
}

type seedExamsRequest struct {
	Items []dto.SeedExamInput `json:"items"`
}

type seedQuestionsRequest struct {
	Items []dto.SeedQuestionInput `json:"items"`
}

func (h *SeedHandler) exams(c *fiber.Ctx) error {
	token := c.Get("X-Seed-Token")
	var payload seedExamsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	affected, err := h.service.SeedExams(c.Context(), token, dto.SeedExamModels(payload.Items))
	if err != nil {
		return h.seedError(c, err)
	}

	return utils.SendSuccess(c, "exams seeded", fiber.Map{"affected": affected})
}

func (h *SeedHandler) questions(c *fiber.Ctx) error {
	token := c.Get("X-Seed-Token")
	var payload seedQuestionsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	affected, err := h.service.SeedQuestions(c.Context(), token, dto.SeedQuestionModels(payload.Items))
	if err != nil {
		return h.seedError(c, err)
	}

	return utils.SendSuccess(c, "questions seeded", fiber.Map{"affected": affected})
}

func (h *SeedHandler) seedError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSeedDisabled):
		return utils.SendError(c, fiber.StatusForbidden, "seeding disabled")
	case errors.Is(err, service.ErrSeedUnauthorized):
		return utils.SendError(c, fiber.StatusForbidden, "invalid token")
	case errors.Is(err, service.ErrSeedInvalidAnswer):
		return utils.SendError(c, fiber.StatusBadRequest, "invalid answer token")
	default:
		h.logger.Error().Err(err).Msg("seed operation failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "seed operation failed")
	}
}
