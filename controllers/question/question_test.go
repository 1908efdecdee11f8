package questionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quizapp/config"
	"quizapp/database"
	"quizapp/models"
	questionRoutes "quizapp/routers/questionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Question{}, &models.UserScore{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	questionRoutes.SetupQuestionRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestAddQuestion(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/add_question", map[string]interface{}{
		"content": "Capital of France?",
		"topic":   "Geography",
		"answer":  "Paris",
		"q_type":  models.QTypeMultipleChoice,
		"options": []string{"Berlin", "Paris", "Madrid", "Rome"},
		"points":  2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var question models.Question
	require.NoError(t, database.Database.Db.First(&question).Error)
	assert.Equal(t, "Paris", question.Answer)
	assert.Equal(t, 2, question.Points)
	assert.NotEmpty(t, question.Options)
}

func TestAddQuestionDefaultPoints(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/add_question", map[string]interface{}{
		"content": "15 x 4?",
		"topic":   "Math",
		"answer":  "60",
		"q_type":  models.QTypeShortAnswer,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var question models.Question
	require.NoError(t, database.Database.Db.First(&question).Error)
	assert.Equal(t, 1, question.Points)
}

func TestAddQuestionValidation(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/add_question", map[string]interface{}{
		"topic":  "Math",
		"points": -1,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	errors := body["data"].(map[string]interface{})
	assert.Contains(t, errors, "content")
	assert.Contains(t, errors, "answer")
	assert.Contains(t, errors, "q_type")
	assert.Contains(t, errors, "points")
}

func TestListQuestionsDoesNotLeakAnswers(t *testing.T) {
	app := setupApp(t)

	question := models.Question{Content: "Capital of France?", Topic: "Geography", Answer: "Paris", QType: models.QTypeShortAnswer, Points: 1}
	require.NoError(t, database.Database.Db.Create(&question).Error)

	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var items []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.EqualValues(t, question.ID, items[0]["id"])
	assert.Equal(t, "Capital of France?", items[0]["content"])
	assert.NotContains(t, items[0], "answer")
	assert.NotContains(t, items[0], "Answer")
}

func TestRemoveQuestion(t *testing.T) {
	app := setupApp(t)

	question := models.Question{Content: "Red planet?", Topic: "Science", Answer: "Mars", QType: models.QTypeShortAnswer, Points: 1}
	require.NoError(t, database.Database.Db.Create(&question).Error)

	resp, _ := postJSON(t, app, "/remove_question", map[string]interface{}{
		"questionId": question.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Question{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemoveQuestionNotFound(t *testing.T) {
	app := setupApp(t)

	resp, body := postJSON(t, app, "/remove_question", map[string]interface{}{
		"questionId": 999,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["status"])
}

func TestRemoveQuestionMissingID(t *testing.T) {
	app := setupApp(t)

	resp, _ := postJSON(t, app, "/remove_question", map[string]interface{}{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
