package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizapp/database"
	"quizapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const seedJSON = `{
  "questions": [
    {"content": "Capital of France?", "topic": "Geography", "answer": "Paris", "q_type": "multiple_choice", "options": ["Berlin", "Paris"], "points": 1},
    {"content": "15 x 4?", "topic": "Math", "answer": "60", "q_type": "short_answer", "points": 2}
  ]
}`

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.UserScore{}))
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "initial_questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedQuestionsLoadsEmptyTable(t *testing.T) {
	db := openTestDb(t)
	path := writeSeedFile(t, seedJSON)

	require.NoError(t, database.SeedQuestions(db, path))

	var questions []models.Question
	require.NoError(t, db.Order("id").Find(&questions).Error)
	require.Len(t, questions, 2)
	assert.Equal(t, "Paris", questions[0].Answer)
	assert.NotEmpty(t, questions[0].Options)
	assert.Equal(t, 2, questions[1].Points)
	assert.Empty(t, questions[1].Options)
}

func TestSeedQuestionsSkipsNonEmptyTable(t *testing.T) {
	db := openTestDb(t)
	path := writeSeedFile(t, seedJSON)

	existing := models.Question{Content: "Already here", Topic: "Misc", Answer: "yes", QType: models.QTypeShortAnswer, Points: 1}
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, database.SeedQuestions(db, path))

	var count int64
	db.Model(&models.Question{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSeedQuestionsMissingFile(t *testing.T) {
	db := openTestDb(t)

	err := database.SeedQuestions(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	var count int64
	db.Model(&models.Question{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestSeedQuestionsInvalidJSON(t *testing.T) {
	db := openTestDb(t)
	path := writeSeedFile(t, "{not json")

	err := database.SeedQuestions(db, path)
	assert.Error(t, err)
}
