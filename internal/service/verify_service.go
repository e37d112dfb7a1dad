package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/quizroom/quizroom-api/internal/repository"
)

// ErrExamNotFound indicates the exam id does not match any active exam.
var ErrExamNotFound = errors.New("exam not found")

// ErrIncorrectPassword indicates the supplied password does not match the
// exam's stored password.
var ErrIncorrectPassword = errors.New("incorrect password")

// VerifyService checks a student-supplied password against the exam record.
// It mints no session token; student identity stays with the caller.
type VerifyService interface {
	VerifyExamPassword(ctx context.Context, examID, password string) error
}

type verifyService struct {
	exams  repository.ExamRepository
	logger zerolog.Logger
	tracer trace.Tracer
}

// NewVerifyService constructs the password verifier.
func NewVerifyService(exams repository.ExamRepository, logger zerolog.Logger) VerifyService {
	return &verifyService{
		exams:  exams,
		logger: logger.With().Str("component", "verify_service").Logger(),
		tracer: otel.Tracer("github.com/quizroom/quizroom-api/internal/service/verify"),
	}
}

func (s *verifyService) VerifyExamPassword(ctx context.Context, examID, password string) error {
	ctx, span := s.tracer.Start(ctx, "verify.password")
	span.SetAttributes(attribute.String("exam.id", examID))
	defer span.End()

	exams, err := s.exams.ListActive(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exam_lookup_failed")
		return fmt.Errorf("fetch active exams: %w", err)
	}

	for _, exam := range exams {
		if exam.ID != examID {
			continue
		}

		// Plain string equality, case-sensitive, no normalization. The
		// stored password is compared as-is, including the empty string.
		if exam.Password == password {
			return nil
		}

		span.SetStatus(codes.Error, "password_mismatch")
		return ErrIncorrectPassword
	}

	span.SetStatus(codes.Error, "exam_not_found")
	return ErrExamNotFound
}
