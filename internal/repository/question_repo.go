package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizroom/quizroom-api/internal/models"
)

// QuestionRepository provides read access to the question bank.
type QuestionRepository interface {
	ListByExam(ctx context.Context, examID string) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository instantiates the repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) ListByExam(ctx context.Context, examID string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	return questions, nil
}
