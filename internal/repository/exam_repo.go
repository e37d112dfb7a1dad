package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizroom/quizroom-api/internal/models"
)

// ExamRepository provides read access to the externally authored exam set.
type ExamRepository interface {
	ListActive(ctx context.Context) ([]models.Exam, error)
}

type examRepository struct {
	db *gorm.DB
}

// NewExamRepository instantiates the repository.
func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) ListActive(ctx context.Context) ([]models.Exam, error) {
	var exams []models.Exam
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ExamStatusActive).
		Order("created_at ASC").
		Find(&exams).Error
	if err != nil {
		return nil, err
	}

	return exams, nil
}
