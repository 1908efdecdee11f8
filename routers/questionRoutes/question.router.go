package questionRoutes

import (
	questionControllers "quizapp/controllers/question"
	questionValidators "quizapp/validators/question"

	"github.com/gofiber/fiber/v2"
)

func SetupQuestionRoutes(app *fiber.App) {
	app.Get("/questions", questionControllers.ListQuestions)
	app.Post("/add_question", questionValidators.AddQuestion(), questionControllers.AddQuestion)
	app.Get("/remove_question", questionControllers.RemoveQuestionList)
	app.Post("/remove_question", questionValidators.RemoveQuestion(), questionControllers.RemoveQuestion)
}
