package db

import (
	"log"

	"github.com/blackboy404-RGB/smm/config"
	"github.com/blackboy404-RGB/smm/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect opens the database connection (sqlite3 by default, postgres when
// configured) and migrates the users/brands/contents schema.
func Connect() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if conf.Database == "postgres" || conf.Database == "postgresql" {
		log.Println("Using postgresql connection...")
		path := "host=" + conf.DbHost + " port=" + conf.DbPort
		path += " user=" + conf.DbUser + " dbname=" + conf.DbName
		path += " password=" + conf.DbPass
		db, err = gorm.Open("postgres", path)
	} else {
		path := conf.DbPath
		if path == "" {
			path = "socialflow.db"
		}
		log.Println("Using sqlite3 connection at " + path)
		db, err = gorm.Open("sqlite3", path)
	}

	if err != nil {
		log.Println("Could not connect to database: " + err.Error())
		return nil, err
	}

	db.LogMode(true)

	db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Content{},
	)

	return db, nil
}
