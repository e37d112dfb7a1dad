package dto

import (
	"time"

	"github.com/quizroom/quizroom-api/internal/models"
)

// VerifyPasswordRequest is the body of a password verification call.
type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

// SubmitQuizRequest is a completed attempt as sent by the quiz page.
// Answers maps question id to the chosen option token. Any accuracy value a
// client might attach is ignored; the score is recomputed from the
// authoritative answer key.
type SubmitQuizRequest struct {
	ExamID        string            `json:"exam_id" validate:"required"`
	StudentName   string            `json:"student_name" validate:"required,min=1,max=255"`
	StudentNumber string            `json:"student_number" validate:"required,min=1,max=64"`
	Answers       map[string]string `json:"answers" validate:"required"`
}

// SubmitQuizResponse reports the graded outcome of a submission.
type SubmitQuizResponse struct {
	ResultID      string  `json:"result_id,omitempty"`
	ExamID        string  `json:"exam_id"`
	StudentName   string  `json:"student_name"`
	StudentNumber string  `json:"student_number"`
	CorrectCount  int     `json:"correct_count"`
	TotalCount    int     `json:"total_count"`
	AccuracyRate  float64 `json:"accuracy_rate"`
}

// ResultResponse is a persisted result as returned to teachers reviewing an
// exam.
type ResultResponse struct {
	ID            string            `json:"id"`
	ExamID        string            `json:"exam_id"`
	StudentName   string            `json:"student_name"`
	StudentNumber string            `json:"student_number"`
	Answers       map[string]string `json:"answers"`
	AccuracyRate  float64           `json:"accuracy_rate"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewResultResponse converts a stored result into its DTO.
func NewResultResponse(model models.StudentResult) ResultResponse {
	answers := make(map[string]string, len(model.Answers))
	for questionID := range model.Answers {
		answers[questionID] = model.AnswerFor(questionID)
	}

	return ResultResponse{
		ID:            model.ID,
		ExamID:        model.ExamID,
		StudentName:   model.StudentName,
		StudentNumber: model.StudentNumber,
		Answers:       answers,
		AccuracyRate:  model.AccuracyRate,
		CreatedAt:     model.CreatedAt,
	}
}

// NewResultResponseSlice converts stored results into DTOs.
func NewResultResponseSlice(results []models.StudentResult) []ResultResponse {
	responses := make([]ResultResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, NewResultResponse(result))
	}

	return responses
}
