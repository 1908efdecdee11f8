package questionController

import (
	"encoding/json"
	"log"
	"quizapp/database"
	"quizapp/middleware"
	"quizapp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ListQuestions returns every question as {id, content}. The canonical
// answer is never exposed here.
func ListQuestions(c *fiber.Ctx) error {
	var questions []models.Question
	if err := database.Database.Db.Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type questionItem struct {
		ID      uint   `json:"id"`
		Content string `json:"content"`
	}

	items := make([]questionItem, len(questions))
	for i, q := range questions {
		items[i] = questionItem{ID: q.ID, Content: q.Content}
	}

	return c.JSON(items)
}

func AddQuestion(c *fiber.Ctx) error {
	reqData := new(struct {
		Content string   `json:"content" form:"content"`
		Topic   string   `json:"topic" form:"topic"`
		Answer  string   `json:"answer" form:"answer"`
		QType   string   `json:"q_type" form:"q_type"`
		Options []string `json:"options" form:"options"`
		Points  int      `json:"points" form:"points"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	newQuestion := models.Question{
		Content: reqData.Content,
		Topic:   reqData.Topic,
		Answer:  reqData.Answer,
		QType:   reqData.QType,
		Points:  reqData.Points, // zero falls back to the column default of 1
	}

	if len(reqData.Options) > 0 {
		raw, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options list!", nil)
		}
		newQuestion.Options = datatypes.JSON(raw)
	}

	if err := database.Database.Db.Create(&newQuestion).Error; err != nil {
		log.Printf("Error saving question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", newQuestion)
}

// RemoveQuestionList lists questions for the removal surface. Content and
// topic only; the canonical answer stays server-side.
func RemoveQuestionList(c *fiber.Ctx) error {
	var questions []models.Question
	if err := database.Database.Db.Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	type questionItem struct {
		ID      uint   `json:"id"`
		Content string `json:"content"`
		Topic   string `json:"topic"`
	}

	items := make([]questionItem, len(questions))
	for i, q := range questions {
		items[i] = questionItem{ID: q.ID, Content: q.Content, Topic: q.Topic}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions list.", items)
}

func RemoveQuestion(c *fiber.Ctx) error {
	reqData := new(struct {
		QuestionID uint `json:"questionId" form:"questionId"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var question models.Question
	if err := database.Database.Db.First(&question, reqData.QuestionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found.", nil)
	}

	if err := database.Database.Db.Delete(&question).Error; err != nil {
		log.Printf("Error removing question %d: %v", question.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question removed successfully!", nil)
}
