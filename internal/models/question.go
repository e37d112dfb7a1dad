package models

import "time"

// Option tokens a student can submit for a question. The answer column holds
// exactly one of these values.
const (
	OptionTokenA = "option_a"
	OptionTokenB = "option_b"
	OptionTokenC = "option_c"
	OptionTokenD = "option_d"
)

// Question is one multiple-choice item belonging to exactly one exam.
type Question struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	ExamID    string    `gorm:"size:64;not null;index" json:"exam_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	OptionA   string    `gorm:"size:512" json:"option_a"`
	OptionB   string    `gorm:"size:512" json:"option_b"`
	OptionC   string    `gorm:"size:512" json:"option_c"`
	OptionD   string    `gorm:"size:512" json:"option_d"`
	Answer    string    `gorm:"size:16;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCorrect reports whether the submitted token matches the stored answer.
// Comparison is an exact token match; anything else, including an empty or
// unknown token, is simply wrong.
func (q Question) IsCorrect(token string) bool {
	return token != "" && token == q.Answer
}
