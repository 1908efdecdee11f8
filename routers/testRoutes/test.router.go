package testRoutes

import (
	testControllers "quizapp/controllers/test"
	"quizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupTestRoutes(app *fiber.App) {
	app.Get("/test", middleware.OptionalJWTMiddleware, testControllers.TestPage)
	app.Post("/test", testControllers.SubmitPage)
	app.Get("/submit", middleware.JWTMiddleware, testControllers.SubmitAll)
	app.Post("/submit", middleware.JWTMiddleware, testControllers.SubmitAll)
	app.Get("/highscore/:userId", testControllers.HighScore)
}
