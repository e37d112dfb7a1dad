package dto

import (
	"time"

	"github.com/quizroom/quizroom-api/internal/models"
)

// PublicExam is the exam representation served to students. The stored
// password must never cross this boundary, so it has no field here.
type PublicExam struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
}

// NewPublicExam strips an exam record down to its client-safe fields.
func NewPublicExam(model models.Exam) PublicExam {
	return PublicExam{
		ID:        model.ID,
		Title:     model.Title,
		StartTime: model.StartTime,
		EndTime:   model.EndTime,
		Status:    model.Status,
	}
}

// NewPublicExamSlice converts a slice of exam models into public DTOs.
func NewPublicExamSlice(exams []models.Exam) []PublicExam {
	public := make([]PublicExam, 0, len(exams))
	for _, exam := range exams {
		public = append(public, NewPublicExam(exam))
	}

	return public
}
