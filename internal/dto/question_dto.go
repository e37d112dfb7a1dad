package dto

import "github.com/quizroom/quizroom-api/internal/models"

// QuestionOptions carries the four display strings for a question.
type QuestionOptions struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
	D string `json:"d"`
}

// QuestionResponse is a question as served to a student taking the quiz.
// The correct-answer token is withheld; grading happens server-side only.
type QuestionResponse struct {
	ID      string          `json:"id"`
	ExamID  string          `json:"exam_id"`
	Title   string          `json:"title"`
	Text    string          `json:"text"`
	Options QuestionOptions `json:"options"`
}

// Sanitizer cleans rich text coming from the externally authored question
// store before it is served to clients.
type Sanitizer interface {
	Sanitize(string) string
}

// NewQuestionResponse converts a question model into its client-safe DTO,
// passing every display string through the sanitizer.
func NewQuestionResponse(model models.Question, sanitize Sanitizer) QuestionResponse {
	clean := func(s string) string {
		if sanitize == nil {
			return s
		}
		return sanitize.Sanitize(s)
	}

	return QuestionResponse{
		ID:     model.ID,
		ExamID: model.ExamID,
		Title:  clean(model.Title),
		Text:   clean(model.Text),
		Options: QuestionOptions{
			A: clean(model.OptionA),
			B: clean(model.OptionB),
			C: clean(model.OptionC),
			D: clean(model.OptionD),
		},
	}
}

// NewQuestionResponseSlice converts a slice of question models into DTOs.
func NewQuestionResponseSlice(questions []models.Question, sanitize Sanitizer) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, NewQuestionResponse(question, sanitize))
	}

	return responses
}
