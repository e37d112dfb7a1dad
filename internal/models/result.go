package models

import (
	"time"

	"gorm.io/datatypes"
)

// StudentResult records one completed quiz attempt. The accuracy rate is
// always computed server-side from the authoritative answer key; a
// client-supplied score is never stored. Rows are append-only.
type StudentResult struct {
	ID            string            `gorm:"primaryKey;size:64" json:"id"`
	ExamID        string            `gorm:"size:64;not null;index" json:"exam_id"`
	StudentName   string            `gorm:"size:255;not null" json:"student_name"`
	StudentNumber string            `gorm:"size:64;not null" json:"student_number"`
	Answers       datatypes.JSONMap `gorm:"type:json" json:"answers"`
	AccuracyRate  float64           `gorm:"not null" json:"accuracy_rate"`
	CreatedAt     time.Time         `json:"created_at"`
}

// AnswerFor returns the option token the student chose for a question, or an
// empty string when the question was left unanswered.
func (r StudentResult) AnswerFor(questionID string) string {
	if r.Answers == nil {
		return ""
	}
	if v, ok := r.Answers[questionID].(string); ok {
		return v
	}
	return ""
}
