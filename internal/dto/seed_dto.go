package dto

import (
	"time"

	"github.com/quizroom/quizroom-api/internal/models"
)

// SeedExamInput is an exam row supplied through the seed tooling endpoint.
// Unlike the public exam payloads it carries the shared password, since
// seeding writes the authoritative record.
type SeedExamInput struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Password  string     `json:"password"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `json:"status"`
}

// ToModel converts the seed input into the stored exam model.
func (in SeedExamInput) ToModel() models.Exam {
	return models.Exam{
		ID:        in.ID,
		Title:     in.Title,
		Password:  in.Password,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    in.Status,
	}
}

// SeedQuestionInput is a question row supplied through the seed tooling
// endpoint, including the correct-answer token.
type SeedQuestionInput struct {
	ID      string `json:"id"`
	ExamID  string `json:"exam_id"`
	Title   string `json:"title"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
	Answer  string `json:"answer"`
}

// ToModel converts the seed input into the stored question model.
func (in SeedQuestionInput) ToModel() models.Question {
	return models.Question{
		ID:      in.ID,
		ExamID:  in.ExamID,
		Title:   in.Title,
		Text:    in.Text,
		OptionA: in.OptionA,
		OptionB: in.OptionB,
		OptionC: in.OptionC,
		OptionD: in.OptionD,
		Answer:  in.Answer,
	}
}

// SeedExamModels converts a batch of exam inputs.
func SeedExamModels(items []SeedExamInput) []models.Exam {
	exams := make([]models.Exam, 0, len(items))
	for _, item := range items {
		exams = append(exams, item.ToModel())
	}

	return exams
}

// SeedQuestionModels converts a batch of question inputs.
func SeedQuestionModels(items []SeedQuestionInput) []models.Question {
	questions := make([]models.Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, item.ToModel())
	}

	return questions
}
