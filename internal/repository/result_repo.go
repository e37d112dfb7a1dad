package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/quizroom/quizroom-api/internal/models"
)

// ResultRepository persists graded attempts. Results are append-only; there
// is no update path.
type ResultRepository interface {
	Create(ctx context.Context, result *models.StudentResult) error
	ListByExam(ctx context.Context, examID string) ([]models.StudentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

// NewResultRepository instantiates the repository.
func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, result *models.StudentResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *resultRepository) ListByExam(ctx context.Context, examID string) ([]models.StudentResult, error) {
	var results []models.StudentResult
	err := r.db.WithContext(ctx).
		Where("exam_id = ?", examID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
