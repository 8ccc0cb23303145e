package config

import (
	"encoding/json"
	"log"
	"os"
)

// FallbackSecret signs tokens when no secret is configured anywhere.
// Carried over from the service this one replaces; rotate it in any real
// deployment.
const FallbackSecret = "socialflow-secret-key-change-in-production"

type Configuration struct {
	ApiPort string `json:"api_port"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbPath   string `json:"db_path"`  // sqlite3 file path
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret string `json:"jwt_secret"`
	} `json:"security"`
}

// Get loads the configuration file and fills in defaults. A missing file is
// not fatal: the service boots on sqlite3 with the baked-in defaults.
// Environment variables (PORT, DATABASE, DATABASE_PATH, SECRET_KEY) win over
// the file, so a .env alone is enough to run without any config.json.
func Get(path string) Configuration {
	var c Configuration

	b, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("config file %s not found, using defaults", path)
	}

	if v := os.Getenv("PORT"); v != "" {
		c.ApiPort = v
	}
	if v := os.Getenv("DATABASE"); v != "" {
		c.Database = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DbPath = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.Security.JwtSecret = v
	}

	if c.ApiPort == "" {
		c.ApiPort = "8000"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "socialflow.db"
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = FallbackSecret
	}

	return c
}
