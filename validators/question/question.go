package questionValidator

import (
	"quizapp/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AddQuestion validator middleware
func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content string `json:"content" form:"content"`
			Topic   string `json:"topic" form:"topic"`
			Answer  string `json:"answer" form:"answer"`
			QType   string `json:"q_type" form:"q_type"`
			Points  int    `json:"points" form:"points"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Question content is required!"
		}
		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if strings.TrimSpace(reqData.Answer) == "" {
			errors["answer"] = "Answer is required!"
		}
		if strings.TrimSpace(reqData.QType) == "" {
			errors["q_type"] = "Question type is required!"
		}
		if reqData.Points < 0 {
			errors["points"] = "Points cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// RemoveQuestion validator middleware
func RemoveQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint `json:"questionId" form:"questionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.QuestionID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"questionId": "No question selected!",
			})
		}

		c.Locals("validatedRemoval", reqData)
		return c.Next()
	}
}
