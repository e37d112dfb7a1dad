package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/quizroom/quizroom-api/internal/dto"
	"github.com/quizroom/quizroom-api/internal/models"
	"github.com/quizroom/quizroom-api/internal/observability"
	"github.com/quizroom/quizroom-api/internal/repository"
)

// ErrResultNotSaved indicates grading succeeded but the result could not be
// persisted. The computed score still accompanies this error so callers may
// show it, but the attempt must be reported as failed.
var ErrResultNotSaved = errors.New("result not saved")

// QuizService serves quiz questions and grades submitted attempts.
type QuizService interface {
	Questions(ctx context.Context, examID string) ([]dto.QuestionResponse, error)
	Submit(ctx context.Context, payload dto.SubmitQuizRequest) (dto.SubmitQuizResponse, error)
	Results(ctx context.Context, examID string) ([]dto.ResultResponse, error)
}

type quizService struct {
	questions repository.QuestionRepository
	results   repository.ResultRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	events    *nats.Conn
	subject   string
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// resultSubmittedEvent is the payload published after a result is stored.
type resultSubmittedEvent struct {
	ResultID     string    `json:"result_id"`
	ExamID       string    `json:"exam_id"`
	AccuracyRate float64   `json:"accuracy_rate"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// NewQuizService constructs the grading service. The NATS connection may be
// nil; event publication is best-effort and never fails a submission.
func NewQuizService(questions repository.QuestionRepository, results repository.ResultRepository, validate *validator.Validate, events *nats.Conn, subject string, logger zerolog.Logger) QuizService {
	return &quizService{
		questions: questions,
		results:   results,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		events:    events,
		subject:   subject,
		logger:    logger.With().Str("component", "quiz_service").Logger(),
		tracer:    otel.Tracer("github.com/quizroom/quizroom-api/internal/service/quiz"),
		now:       time.Now,
	}
}

func (s *quizService) Questions(ctx context.Context, examID string) ([]dto.QuestionResponse, error) {
	questions, err := s.questions.ListByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}

	return dto.NewQuestionResponseSlice(questions, s.sanitizer), nil
}

func (s *quizService) Submit(ctx context.Context, payload dto.SubmitQuizRequest) (dto.SubmitQuizResponse, error) {
	ctx, span := s.tracer.Start(ctx, "quiz.submit")
	span.SetAttributes(attribute.String("exam.id", payload.ExamID))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.SubmitQuizResponse{}, err
	}

	questions, err := s.questions.ListByExam(ctx, payload.ExamID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "question_fetch_failed")
		return dto.SubmitQuizResponse{}, fmt.Errorf("fetch questions: %w", err)
	}

	correct, total, rate := scoreSubmission(questions, payload.Answers)
	span.SetAttributes(
		attribute.Int("quiz.correct", correct),
		attribute.Int("quiz.total", total),
		attribute.Float64("quiz.accuracy", rate),
	)

	response := dto.SubmitQuizResponse{
		ExamID:        payload.ExamID,
		StudentName:   payload.StudentName,
		StudentNumber: payload.StudentNumber,
		CorrectCount:  correct,
		TotalCount:    total,
		AccuracyRate:  rate,
	}

	answers := make(datatypes.JSONMap, len(payload.Answers))
	for questionID, token := range payload.Answers {
		answers[questionID] = token
	}

	result := models.StudentResult{
		ID:            uuid.NewString(),
		ExamID:        payload.ExamID,
		StudentName:   payload.StudentName,
		StudentNumber: payload.StudentNumber,
		Answers:       answers,
		AccuracyRate:  rate,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.results.Create(ctx, &result); err != nil {
		s.logger.Error().Err(err).Str("exam_id", payload.ExamID).Msg("failed to persist result")
		span.RecordError(err)
		span.SetStatus(codes.Error, "result_persist_failed")
		// The score is still reported, but the attempt counts as failed.
		return response, ErrResultNotSaved
	}

	response.ResultID = result.ID
	observability.GradedAccuracy().Observe(rate)
	s.publishSubmitted(result)

	s.logger.Info().
		Str("exam_id", result.ExamID).
		Str("result_id", result.ID).
		Int("correct", correct).
		Int("total", total).
		Float64("accuracy_rate", rate).
		Msg("quiz graded")

	return response, nil
}

func (s *quizService) Results(ctx context.Context, examID string) ([]dto.ResultResponse, error) {
	results, err := s.results.ListByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}

	return dto.NewResultResponseSlice(results), nil
}

// scoreSubmission grades one attempt against the authoritative question set.
// Missing or unknown tokens count as incorrect rather than erroring, and an
// exam with no questions grades to a defined rate of zero.
func scoreSubmission(questions []models.Question, answers map[string]string) (correct, total int, rate float64) {
	total = len(questions)
	for _, question := range questions {
		if question.IsCorrect(answers[question.ID]) {
			correct++
		}
	}

	if total > 0 {
		rate = float64(correct) / float64(total)
	}

	return correct, total, rate
}

func (s *quizService) publishSubmitted(result models.StudentResult) {
	if s.events == nil || s.subject == "" {
		return
	}

	payload, err := json.Marshal(resultSubmittedEvent{
		ResultID:     result.ID,
		ExamID:       result.ExamID,
		AccuracyRate: result.AccuracyRate,
		SubmittedAt:  result.CreatedAt,
	})
	if err != nil {
		return
	}

	if err := s.events.Publish(s.subject, payload); err != nil {
		s.logger.Warn().Err(err).Str("subject", s.subject).Msg("failed to publish result event")
	}
}
