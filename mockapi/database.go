package main

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb opens the SQLite database and runs migrations
func ConnectDb(name string) {
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}

	runMigrations(db)

	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&UserRow{},
		&StudentRow{},
		&InstructorRow{},
		&CourseRow{},
		&TeachesRow{},
		&EnrollmentRow{},
		&ModuleRow{},
		&ContentRow{},
		&AssignmentRow{},
		&SubmissionRow{},
		&AnnouncementRow{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
