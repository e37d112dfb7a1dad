package models

import "time"

// Exam statuses as stored in the exam database.
const (
	ExamStatusDraft  = "Draft"
	ExamStatusActive = "Active"
	ExamStatusClosed = "Closed"
)

// Exam represents a quiz unit students can enter with a shared password.
// Exams are authored externally; this service only reads them.
type Exam struct {
	ID        string     `gorm:"primaryKey;size:64" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Password  string     `gorm:"size:255" json:"-"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Status    string     `gorm:"size:16;not null;default:Draft" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Questions []Question `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsActive reports whether the exam is open for students.
func (e Exam) IsActive() bool {
	return e.Status == ExamStatusActive
}
