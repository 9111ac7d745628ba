// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and schema creation
//	├── schema.go        # CREATE TABLE IF NOT EXISTS statements
//	├── errors.go        # StorageError and constraint classification
//	├── users/           # User inserts and credential lookups
//	├── catalog/         # Course/module/lesson/assignment/quiz reads
//	└── audit/           # Account activity trail
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./learning.db", logger.Warn)
//
//	usersRepo := users.NewRepository(db.DB)
//	catalogRepo := catalog.NewRepository(db.DB)
//
//	err = usersRepo.CreateUser(&entities.User{...})
//	titles, err := catalogRepo.ModuleTitles("Algebra")
//
// # Schema
//
// The schema is created with plain DDL rather than gorm's AutoMigrate: tables
// are only ever created when missing, never altered. Enum columns carry CHECK
// constraints and child tables reference their parents with FOREIGN KEY
// clauses, enforced through the _foreign_keys DSN parameter.
package database
