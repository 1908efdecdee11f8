package testController

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/middleware/session"
	"quizapp/models"
)

// PerPage is the number of questions shown on a test page
const PerPage = 5

// Submitted answer fields are named page_<page>_answer_<questionID>.
var answerKeyPattern = regexp.MustCompile(`^page_(\d+)_answer_(\d+)$`)

// TotalPages returns the page count for the given number of questions.
func TotalPages(totalQuestions int64) int {
	return int((totalQuestions + PerPage - 1) / PerPage)
}

// ParsePageAnswers extracts the answers from submitted form fields. Only
// fields prefixed with "page_" are considered; of those, fields matching
// the answer key pattern become questionID -> answer entries. Everything
// else (csrf tokens, buttons) is dropped.
func ParsePageAnswers(fields map[string]string) map[uint]string {
	answers := make(map[uint]string)
	for key, value := range fields {
		if !strings.HasPrefix(key, "page_") {
			continue
		}
		match := answerKeyPattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		questionID, err := strconv.ParseUint(match[2], 10, 64)
		if err != nil {
			continue
		}
		answers[uint(questionID)] = value
	}
	return answers
}

// ScoreAnswers grades the merged answer set against every question.
// Matching is exact on the trimmed, lower-cased text; a match earns the
// question's points, anything else earns nothing. All question types are
// graded the same way.
func ScoreAnswers(questions []models.Question, answers map[uint]string) int {
	score := 0
	for _, q := range questions {
		userAnswer, ok := answers[q.ID]
		if !ok {
			continue
		}
		if strings.ToLower(strings.TrimSpace(userAnswer)) == strings.ToLower(strings.TrimSpace(q.Answer)) {
			score += q.Points
		}
	}
	return score
}

func pageKey(page int) string {
	return fmt.Sprintf("page_%d_answers", page)
}

// savePageAnswers replaces the stored answer map for one page.
func savePageAnswers(sess *session.Session, page int, answers map[uint]string) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	sess.Set(pageKey(page), string(raw))
	return sess.Save()
}

// savedAnswers merges the stored answer maps of pages 1..totalPages.
// Keys are page-qualified per question, so merge order does not matter.
func savedAnswers(sess *session.Session, totalPages int) map[uint]string {
	merged := make(map[uint]string)
	for p := 1; p <= totalPages; p++ {
		raw, ok := sess.Get(pageKey(p)).(string)
		if !ok || raw == "" {
			continue
		}
		var pageAnswers map[uint]string
		if err := json.Unmarshal([]byte(raw), &pageAnswers); err != nil {
			continue
		}
		for id, value := range pageAnswers {
			merged[id] = value
		}
	}
	return merged
}

// clearAnswers drops every stored page map. Missing keys are fine.
func clearAnswers(sess *session.Session, totalPages int) error {
	for p := 1; p <= totalPages; p++ {
		sess.Delete(pageKey(p))
	}
	return sess.Save()
}
