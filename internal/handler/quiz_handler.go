package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/dto"
	"github.com/quizroom/quizroom-api/internal/service"
	"github.com/quizroom/quizroom-api/internal/utils"
)

// QuizHandler manages the quiz-taking endpoints: password verification,
// question delivery, and submission grading.
type QuizHandler struct {
	quiz   service.QuizService
	verify service.VerifyService
	// shared secret guarding the teacher-facing result listing; empty
	// disables the endpoint
	reviewToken string
	logger      zerolog.Logger
}

// NewQuizHandler builds a quiz handler instance.
func NewQuizHandler(quiz service.QuizService, verify service.VerifyService, reviewToken string, logger zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		quiz:        quiz,
		verify:      verify,
		reviewToken: reviewToken,
		logger:      logger.With().Str("component", "quiz_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *QuizHandler) Register(router fiber.Router) {
	router.Post("/:id/verify", h.verifyPassword)
	router.Get("/:id/questions", h.questions)
	router.Post("/:id/submissions", h.submit)
	router.Get("/:id/results", h.results)
}

func (h *QuizHandler) verifyPassword(c *fiber.Ctx) error {
	examID := c.Params("id")

	var payload dto.VerifyPasswordRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.verify.VerifyExamPassword(c.Context(), examID, payload.Password); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "password verified", nil)
}

func (h *QuizHandler) questions(c *fiber.Ctx) error {
	examID := c.Params("id")

	questions, err := h.quiz.Questions(c.Context(), examID)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "questions retrieved", questions)
}

func (h *QuizHandler) submit(c *fiber.Ctx) error {
	var payload dto.SubmitQuizRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// The path parameter is authoritative for the exam id.
	payload.ExamID = c.Params("id")

	graded, err := h.quiz.Submit(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "quiz submitted", graded)
}

func (h *QuizHandler) results(c *fiber.Ctx) error {
	if h.reviewToken == "" || c.Get("X-Review-Token") != h.reviewToken {
		return utils.SendError(c, fiber.StatusForbidden, "review access denied")
	}

	results, err := h.quiz.Results(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "results retrieved", results)
}

func (h *QuizHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrExamNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "exam not found")
	case errors.Is(err, service.ErrIncorrectPassword):
		return utils.SendError(c, fiber.StatusUnauthorized, "incorrect password")
	case errors.Is(err, service.ErrResultNotSaved):
		return utils.SendError(c, fiber.StatusServiceUnavailable, "failed to save result, please try again")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		// Gateway failures stay generic; internals never reach the client.
		h.logger.Error().Err(err).Msg("gateway error")
		return utils.SendError(c, fiber.StatusBadGateway, "service temporarily unavailable, please try again")
	}
}
