// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"palmtrack/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Migrate creates/updates every entity table. Exposed separately so tests can
// run it against their own throwaway databases.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Garden{},
		&entities.Task{},
		&entities.Harvest{},
		&entities.Issue{},
		&entities.Maintenance{},
		&entities.Documentation{},
		&entities.Expense{},
	)
}
