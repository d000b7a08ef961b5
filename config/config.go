package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the few knobs the app reads from the environment.
type Config struct {
	Port   string
	DBPath string
}

// Load reads .env if present and resolves the config with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file, using environment defaults")
	}
	return Config{
		Port:   getenv("PORT", "8080"),
		DBPath: getenv("DB_PATH", "data/macrobalance.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the embedded SQLite database, creating its directory if
// needed.
func OpenDB(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
