package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"quizapp/config"
	"quizapp/database"
	"quizapp/models"

	"gorm.io/datatypes"
)

// Bulk-loads a question bank from a CSV file into the database.
// Expected headers: content, topic, answer, q_type, options, points.
// The options column holds a pipe-separated list for multiple choice.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	path := "questions.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(strings.ToLower(h))] = i
	}

	for _, required := range []string{"content", "topic", "answer", "q_type"} {
		if _, ok := headerIndex[required]; !ok {
			log.Fatalf("Missing required CSV column: %s", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := headerIndex[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	inserted := 0
	skipped := 0

	for i, row := range records[1:] {
		content := field(row, "content")
		topic := field(row, "topic")
		answer := field(row, "answer")
		qType := field(row, "q_type")

		if content == "" || topic == "" || answer == "" || qType == "" {
			log.Printf("Skipping row %d: missing required fields", i+2)
			skipped++
			continue
		}

		points := 1
		if raw := field(row, "points"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				points = parsed
			}
		}

		question := models.Question{
			Content: content,
			Topic:   topic,
			Answer:  answer,
			QType:   qType,
			Points:  points,
		}

		if raw := field(row, "options"); raw != "" {
			options := strings.Split(raw, "|")
			for j := range options {
				options[j] = strings.TrimSpace(options[j])
			}
			encoded, err := json.Marshal(options)
			if err != nil {
				log.Printf("Skipping row %d: bad options: %v", i+2, err)
				skipped++
				continue
			}
			question.Options = datatypes.JSON(encoded)
		}

		if err := database.Database.Db.Create(&question).Error; err != nil {
			log.Printf("Failed to insert row %d: %v", i+2, err)
			skipped++
			continue
		}
		inserted++
	}

	log.Printf("Import finished: %d inserted, %d skipped", inserted, skipped)
}
