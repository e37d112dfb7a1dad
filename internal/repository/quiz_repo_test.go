package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quizroom/quizroom-api/internal/models"
)

func setupQuizTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Exam{}, &models.Question{}, &models.StudentResult{}))
	return db
}

func TestExamRepositoryListActiveFiltersStatus(t *testing.T) {
	db := setupQuizTestDB(t)
	repo := NewExamRepository(db)

	require.NoError(t, db.Create(&models.Exam{ID: "draft", Title: "Draft Quiz", Status: models.ExamStatusDraft}).Error)
	require.NoError(t, db.Create(&models.Exam{ID: "active", Title: "Live Quiz", Password: "pw", Status: models.ExamStatusActive}).Error)
	require.NoError(t, db.Create(&models.Exam{ID: "closed", Title: "Old Quiz", Status: models.ExamStatusClosed}).Error)

	exams, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, exams, 1)
	require.Equal(t, "active", exams[0].ID)
	require.Equal(t, "pw", exams[0].Password, "gateway keeps the password, stripping happens at the DTO boundary")
}

func TestQuestionRepositoryListByExam(t *testing.T) {
	db := setupQuizTestDB(t)
	repo := NewQuestionRepository(db)

	require.NoError(t, db.Create(&models.Question{ID: "q1", ExamID: "E1", Text: "one", Answer: models.OptionTokenA}).Error)
	require.NoError(t, db.Create(&models.Question{ID: "q2", ExamID: "E1", Text: "two", Answer: models.OptionTokenB}).Error)
	require.NoError(t, db.Create(&models.Question{ID: "other", ExamID: "E2", Text: "other", Answer: models.OptionTokenC}).Error)

	questions, err := repo.ListByExam(context.Background(), "E1")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	for _, question := range questions {
		require.Equal(t, "E1", question.ExamID)
	}

	none, err := repo.ListByExam(context.Background(), "missing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestResultRepositoryRoundTrip(t *testing.T) {
	db := setupQuizTestDB(t)
	repo := NewResultRepository(db)

	result := models.StudentResult{
		ID:            "r1",
		ExamID:        "E1",
		StudentName:   "Lin Mei",
		StudentNumber: "S1001",
		Answers:       datatypes.JSONMap{"q1": models.OptionTokenA, "q2": models.OptionTokenD},
		AccuracyRate:  0.5,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), &result))

	fetched, err := repo.ListByExam(context.Background(), "E1")
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	require.Equal(t, "Lin Mei", fetched[0].StudentName)
	require.Equal(t, "S1001", fetched[0].StudentNumber)
	require.Equal(t, "E1", fetched[0].ExamID)
	require.Equal(t, 0.5, fetched[0].AccuracyRate)
	require.Equal(t, models.OptionTokenA, fetched[0].AnswerFor("q1"))
	require.Equal(t, models.OptionTokenD, fetched[0].AnswerFor("q2"))
	require.Empty(t, fetched[0].AnswerFor("q3"))
}

func TestSeedRepositoryUpsertIsIdempotent(t *testing.T) {
	db := setupQuizTestDB(t)
	repo := NewSeedRepository(db)

	exams := []models.Exam{{ID: "E1", Title: "First", Password: "pw", Status: models.ExamStatusActive}}
	_, err := repo.UpsertExams(context.Background(), exams)
	require.NoError(t, err)

	exams[0].Title = "Renamed"
	_, err = repo.UpsertExams(context.Background(), exams)
	require.NoError(t, err)

	var stored []models.Exam
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	require.Equal(t, "Renamed", stored[0].Title)
}
