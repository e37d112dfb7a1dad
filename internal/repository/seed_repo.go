package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quizroom/quizroom-api/internal/models"
)

// SeedRepository is the write path used only by the development seeding
// tools. The student-facing gateway stays read-only for exams and questions.
type SeedRepository interface {
	UpsertExams(ctx context.Context, items []models.Exam) (int64, error)
	UpsertQuestions(ctx context.Context, items []models.Question) (int64, error)
}

type seedRepository struct {
	db *gorm.DB
}

// NewSeedRepository instantiates the repository.
func NewSeedRepository(db *gorm.DB) SeedRepository {
	return &seedRepository{db: db}
}

func (r *seedRepository) UpsertExams(ctx context.Context, items []models.Exam) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "password", "start_time", "end_time", "status", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}

func (r *seedRepository) UpsertQuestions(ctx context.Context, items []models.Question) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"exam_id", "title", "text", "option_a", "option_b", "option_c", "option_d", "answer", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}
