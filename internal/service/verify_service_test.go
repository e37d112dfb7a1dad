package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizroom/quizroom-api/internal/models"
)

type fakeExamRepo struct {
	exams []models.Exam
	err   error
	calls int
}

func (f *fakeExamRepo) ListActive(ctx context.Context) ([]models.Exam, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Exam(nil), f.exams...), nil
}

func TestVerifyExamPasswordExactMatch(t *testing.T) {
	repo := &fakeExamRepo{exams: []models.Exam{
		{ID: "E1", Title: "Midterm", Password: "secret", Status: models.ExamStatusActive},
	}}
	svc := NewVerifyService(repo, testLogger())

	require.NoError(t, svc.VerifyExamPassword(context.Background(), "E1", "secret"))
}

func TestVerifyExamPasswordCaseSensitive(t *testing.T) {
	repo := &fakeExamRepo{exams: []models.Exam{
		{ID: "E1", Title: "Midterm", Password: "secret", Status: models.ExamStatusActive},
	}}
	svc := NewVerifyService(repo, testLogger())

	err := svc.VerifyExamPassword(context.Background(), "E1", "Secret")
	require.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestVerifyExamPasswordWrongPassword(t *testing.T) {
	repo := &fakeExamRepo{exams: []models.Exam{
		{ID: "E1", Title: "Midterm", Password: "secret", Status: models.ExamStatusActive},
	}}
	svc := NewVerifyService(repo, testLogger())

	err := svc.VerifyExamPassword(context.Background(), "E1", "guess")
	require.ErrorIs(t, err, ErrIncorrectPassword)
	require.NotContains(t, err.Error(), "secret")
}

func TestVerifyExamPasswordEmptyStoredAndSupplied(t *testing.T) {
	repo := &fakeExamRepo{exams: []models.Exam{
		{ID: "open", Title: "Open Quiz", Password: "", Status: models.ExamStatusActive},
	}}
	svc := NewVerifyService(repo, testLogger())

	require.NoError(t, svc.VerifyExamPassword(context.Background(), "open", ""))
	require.ErrorIs(t, svc.VerifyExamPassword(context.Background(), "open", "x"), ErrIncorrectPassword)
}

func TestVerifyExamPasswordUnknownExam(t *testing.T) {
	repo := &fakeExamRepo{exams: []models.Exam{
		{ID: "E1", Title: "Midterm", Password: "secret", Status: models.ExamStatusActive},
	}}
	svc := NewVerifyService(repo, testLogger())

	for _, password := range []string{"", "secret", "anything"} {
		err := svc.VerifyExamPassword(context.Background(), "missing", password)
		require.ErrorIs(t, err, ErrExamNotFound)
	}
}

func TestVerifyExamPasswordGatewayFailure(t *testing.T) {
	gatewayErr := errors.New("connection refused")
	repo := &fakeExamRepo{err: gatewayErr}
	svc := NewVerifyService(repo, testLogger())

	err := svc.VerifyExamPassword(context.Background(), "E1", "secret")
	require.ErrorIs(t, err, gatewayErr)
	require.NotErrorIs(t, err, ErrIncorrectPassword)
	require.NotErrorIs(t, err, ErrExamNotFound)
}
