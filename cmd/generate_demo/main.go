// Command generate_demo creates a demo database with the bundled catalog and a demo student.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db] [-fixture fixtures/catalog.yaml]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/database"
	"github.com/mrlokans/learning/internal/database/users"
	"github.com/mrlokans/learning/internal/logger"
	"github.com/mrlokans/learning/internal/seed"
)

const (
	defaultDemoDatabasePath = "./demo/demo.db"
	demoEmail               = "demo@example.com"
	demoPassword            = "demo"
)

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	fixture := flag.String("fixture", config.DefaultSeedFile, "catalog fixture to load")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	fixtureFile, err := seed.ParseFile(*fixture)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, database.ParseLogLevel("silent"))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	zl := logger.NewNop()

	res, err := seed.NewLoader(db.DB, zl).Load(fixtureFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded catalog: %s", res)

	accounts := auth.NewService(users.NewRepository(db.DB), zl)
	if _, err := accounts.Register("Demo", "Student", demoEmail, demoPassword); err != nil {
		log.Fatalf("Failed to register demo student: %v", err)
	}
	log.Printf("Registered demo student %s / %s", demoEmail, demoPassword)

	log.Println("Demo database generated successfully!")
}
