package authRoutes

import (
	authControllers "quizapp/controllers/auth"
	"quizapp/middleware"
	authValidators "quizapp/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", middleware.OptionalJWTMiddleware, authControllers.Home)
	app.Post("/signup", authValidators.Signup(), authControllers.Signup)
	app.Post("/login", authValidators.Login(), authControllers.Login)
	app.Get("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
