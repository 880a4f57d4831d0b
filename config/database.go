package config

import (
	"strings"

	"github.com/Chaitanya2267/edulink/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by databaseURL and migrates the schema.
// An empty URL means the default sqlite file in the working directory; a
// mysql:// or postgres:// URL selects that driver; anything else is handed to
// sqlite as a DSN.
func Connect(databaseURL string, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch {
	case databaseURL == "":
		dialector = sqlite.Open("edulink.db")
	case strings.HasPrefix(databaseURL, "mysql://"):
		dialector = mysql.Open(strings.TrimPrefix(databaseURL, "mysql://"))
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		dialector = postgres.Open(databaseURL)
	default:
		dialector = sqlite.Open(databaseURL)
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Course{}, &models.Material{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
