package testController

import (
	"errors"
	"log"
	"quizapp/database"
	"quizapp/middleware"
	"quizapp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TestPage renders one page of the test: the page's question slice, every
// answer saved so far, and the caller's best score when logged in.
func TestPage(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	db := database.Database.Db

	var totalQuestions int64
	if err := db.Model(&models.Question{}).Count(&totalQuestions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}
	totalPages := TotalPages(totalQuestions)

	// Out-of-range pages simply come back empty
	var questions []models.Question
	if err := db.Offset((page - 1) * PerPage).Limit(PerPage).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load session!", nil)
	}
	saved := savedAnswers(sess, totalPages)

	bestScore := 0
	if userID, ok := c.Locals("userId").(uint); ok {
		var userScore models.UserScore
		if err := db.Where("user_id = ?", userID).First(&userScore).Error; err == nil {
			bestScore = userScore.HighScore
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test page.", fiber.Map{
		"questions":     questions,
		"saved_answers": saved,
		"page":          page,
		"total_pages":   totalPages,
		"is_last_page":  page == totalPages,
		"best_score":    bestScore,
	})
}

// SubmitPage stores the answers of one page in the session and tells the
// client where to go next.
func SubmitPage(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	db := database.Database.Db

	var totalQuestions int64
	if err := db.Model(&models.Question{}).Count(&totalQuestions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}
	totalPages := TotalPages(totalQuestions)

	fields := make(map[string]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load session!", nil)
	}

	// Full replace of this page's stored answers
	if err := savePageAnswers(sess, page, ParsePageAnswers(fields)); err != nil {
		log.Printf("Error saving page %d answers: %v", page, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answers!", nil)
	}

	if page < totalPages {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers saved.", fiber.Map{
			"next_page":    page + 1,
			"is_last_page": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers saved. Ready to submit.", fiber.Map{
		"is_last_page": true,
		"submit_path":  "/submit",
	})
}

// SubmitAll grades the whole test: merges every page's answers, scores
// them against the question bank, raises the user's high score when
// beaten and returns the leaderboard. The session answers are cleared
// afterwards.
func SubmitAll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in first!", nil)
	}

	db := database.Database.Db

	var totalQuestions int64
	if err := db.Model(&models.Question{}).Count(&totalQuestions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}
	totalPages := TotalPages(totalQuestions)

	sess, err := middleware.SessionStore.Get(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load session!", nil)
	}

	allAnswers := savedAnswers(sess, totalPages)
	if len(allAnswers) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer the questions first!", fiber.Map{
			"redirect_page": 1,
		})
	}

	var questions []models.Question
	if err := db.Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load questions!", nil)
	}

	score := ScoreAnswers(questions, allAnswers)

	// The high score may only go up. The conditional update keeps two
	// racing submissions from losing the larger score.
	err = db.Transaction(func(tx *gorm.DB) error {
		var userScore models.UserScore
		err := tx.Where("user_id = ?", userID).First(&userScore).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.UserScore{UserID: userID, HighScore: score}).Error
		}
		if err != nil {
			return err
		}
		if score > userScore.HighScore {
			return tx.Model(&models.UserScore{}).
				Where("user_id = ? AND high_score < ?", userID, score).
				Update("high_score", score).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("Error saving score for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save score!", nil)
	}

	var topScores []models.UserScore
	if err := db.Order("high_score desc").Limit(10).Find(&topScores).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load leaderboard!", nil)
	}

	if err := clearAnswers(sess, totalPages); err != nil {
		log.Printf("Error clearing session answers: %v", err)
	}

	bestScore := score
	var userScore models.UserScore
	if err := db.Where("user_id = ?", userID).First(&userScore).Error; err == nil {
		bestScore = userScore.HighScore
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Test submitted!", fiber.Map{
		"score":      score,
		"best_score": bestScore,
		"top_scores": topScores,
	})
}

// HighScore returns a user's stored high score, zero when the user has
// none. The bare shape matches the original endpoint.
func HighScore(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	var userScore models.UserScore
	if err := database.Database.Db.Where("user_id = ?", userID).First(&userScore).Error; err != nil {
		return c.JSON(fiber.Map{"high_score": 0})
	}

	return c.JSON(fiber.Map{"high_score": userScore.HighScore})
}
