package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/models"
	"github.com/quizroom/quizroom-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
	// ErrSeedInvalidAnswer indicates a seeded question carries an unknown
	// answer token.
	ErrSeedInvalidAnswer = errors.New("invalid answer token")
)

// SeedService loads sample exams and questions for development environments.
type SeedService interface {
	SeedExams(ctx context.Context, token string, items []models.Exam) (int64, error)
	SeedQuestions(ctx context.Context, token string, items []models.Question) (int64, error)
}

type seedService struct {
	repo    repository.SeedRepository
	enabled bool
	token   string
	logger  zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(repo repository.SeedRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		repo:    repo,
		enabled: enabled,
		token:   token,
		logger:  logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) SeedExams(ctx context.Context, token string, items []models.Exam) (int64, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return 0, ErrSeedUnauthorized
	}

	normalized := normalizeExams(items)
	affected, err := s.repo.UpsertExams(ctx, normalized)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("affected", affected).Msg("exams seeded")
	return affected, nil
}

func (s *seedService) SeedQuestions(ctx context.Context, token string, items []models.Question) (int64, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return 0, ErrSeedUnauthorized
	}

	normalized, err := normalizeQuestions(items)
	if err != nil {
		return 0, err
	}

	affected, err := s.repo.UpsertQuestions(ctx, normalized)
	if err != nil {
		return 0, err
	}

	s.logger.Info().Int64("affected", affected).Msg("questions seeded")
	return affected, nil
}

func (s *seedService) validateToken(token string) bool {
	return s.token != "" && token == s.token
}

func normalizeExams(items []models.Exam) []models.Exam {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if items[i].Status == "" {
			items[i].Status = models.ExamStatusDraft
		}
	}
	return items
}

func normalizeQuestions(items []models.Question) ([]models.Question, error) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		switch items[i].Answer {
		case models.OptionTokenA, models.OptionTokenB, models.OptionTokenC, models.OptionTokenD:
		default:
			return nil, ErrSeedInvalidAnswer
		}
	}
	return items, nil
}
