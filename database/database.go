package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"quizapp/config"
	"quizapp/models"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to the configured database
func ConnectDb() {
	var db *gorm.DB
	var err error

	switch config.AppConfig.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	// Load the initial question bank on first start
	if err := SeedQuestions(db, config.AppConfig.SeedFile); err != nil {
		log.Printf("Warning: question seeding skipped: %v", err)
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.UserScore{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

type seedQuestion struct {
	Content string   `json:"content"`
	Topic   string   `json:"topic"`
	Answer  string   `json:"answer"`
	QType   string   `json:"q_type"`
	Options []string `json:"options"`
	Points  int      `json:"points"`
}

type seedFile struct {
	Questions []seedQuestion `json:"questions"`
}

// SeedQuestions loads the JSON question bank into the questions table,
// but only when the table is still empty.
func SeedQuestions(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("invalid seed file %s: %w", path, err)
	}

	questions := make([]models.Question, 0, len(seed.Questions))
	for _, q := range seed.Questions {
		question := models.Question{
			Content: q.Content,
			Topic:   q.Topic,
			Answer:  q.Answer,
			QType:   q.QType,
			Points:  q.Points,
		}
		if len(q.Options) > 0 {
			raw, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			question.Options = datatypes.JSON(raw)
		}
		questions = append(questions, question)
	}

	if len(questions) == 0 {
		return nil
	}

	if err := db.Create(&questions).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d questions from %s", len(questions), path)
	return nil
}
