package authController

import (
	"log"
	"quizapp/config"
	"quizapp/database"
	"quizapp/middleware"
	"quizapp/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Home reports the identity context for the landing page
func Home(c *fiber.Ctx) error {
	authenticated := false
	username := ""

	if _, ok := c.Locals("userId").(uint); ok {
		authenticated = true
		username, _ = c.Locals("username").(string)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Welcome!", fiber.Map{
		"authenticated": authenticated,
		"username":      username,
	})
}

func Signup(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken! Please try another one.", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	// Every user starts with a zero high score
	newScore := models.UserScore{UserID: newUser.ID, HighScore: 0}
	if err := db.Create(&newScore).Error; err != nil {
		log.Printf("Error creating user score: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful! You can log in now.", fiber.Map{
		"id":       newUser.ID,
		"username": newUser.Username,
	})
}

func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong username or password.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Wrong username or password.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout clears the identity cookie. Requires a logged-in user.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}
