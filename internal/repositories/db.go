package repositories

import (
	"fmt"
	"log"

	"github.com/lukav-dev/userbase/internal/config"
	"github.com/lukav-dev/userbase/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	db, err := Open(config.Envs.DatabaseType, config.Envs.DBURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	// Run migrations
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Printf("Successfully connected to %s database", config.Envs.DatabaseType)
}

// Open resolves the storage dialect once at startup. Handlers only ever see
// the UserStore contract, never the active dialect.
func Open(dbType, dsn string) (*gorm.DB, error) {
	switch dbType {
	case "postgres", "postgresql":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		if dsn == "" {
			dsn = "./db.sqlite"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DATABASE_TYPE %q", dbType)
	}
}
