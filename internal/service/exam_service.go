package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizroom/quizroom-api/internal/dto"
	"github.com/quizroom/quizroom-api/internal/repository"
)

const examListCacheKey = "exams:active"

// ExamService serves the exam list students pick from. Stored passwords never
// leave this layer.
type ExamService interface {
	ListActive(ctx context.Context) ([]dto.PublicExam, error)
}

type examService struct {
	exams    repository.ExamRepository
	cache    *redis.Client
	cacheTTL time.Duration
	// when set, the listing is narrowed to this single exam
	defaultExamID string
	logger        zerolog.Logger
}

// NewExamService builds the exam listing service. The cache client may be nil,
// in which case every call goes straight to the gateway.
func NewExamService(exams repository.ExamRepository, cache *redis.Client, ttl time.Duration, defaultExamID string, logger zerolog.Logger) ExamService {
	return &examService{
		exams:         exams,
		cache:         cache,
		cacheTTL:      ttl,
		defaultExamID: defaultExamID,
		logger:        logger.With().Str("component", "exam_service").Logger(),
	}
}

func (s *examService) ListActive(ctx context.Context) ([]dto.PublicExam, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cacheKey()).Result(); err == nil {
			var public []dto.PublicExam
			if unmarshalErr := json.Unmarshal([]byte(cached), &public); unmarshalErr == nil {
				s.logger.Debug().Msg("exam list cache hit")
				return public, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read exam list cache")
		}
	}

	exams, err := s.exams.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch active exams: %w", err)
	}

	public := dto.NewPublicExamSlice(exams)
	if s.defaultExamID != "" {
		narrowed := make([]dto.PublicExam, 0, 1)
		for _, exam := range public {
			if exam.ID == s.defaultExamID {
				narrowed = append(narrowed, exam)
			}
		}
		public = narrowed
	}

	if s.cache != nil {
		if payload, err := json.Marshal(public); err == nil {
			if err := s.cache.Set(ctx, s.cacheKey(), payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store exam list cache")
			}
		}
	}

	return public, nil
}

func (s *examService) cacheKey() string {
	if s.defaultExamID != "" {
		return examListCacheKey + ":" + s.defaultExamID
	}
	return examListCacheKey
}
