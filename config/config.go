package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBType         string
	MongoURL       string
	MongoDatabase  string
	PostgresURL    string
	Port           string
	AllowedOrigins string
	LogMode        string
	MaxUploadMB    int64
	R2             R2Config
}

// R2Config holds the Cloudflare R2 settings used to archive raw uploads.
// Archiving is disabled when Bucket or AccountID is empty.
type R2Config struct {
	Bucket          string
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

func (c R2Config) Enabled() bool {
	return c.Bucket != "" && c.AccountID != ""
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		DBType:         strings.ToLower(os.Getenv("DB_TYPE")),
		MongoURL:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  os.Getenv("MONGO_DB"),
		PostgresURL:    os.Getenv("POSTGRES_URL"),
		Port:           os.Getenv("PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		LogMode:        os.Getenv("LOG_MODE"),
		MaxUploadMB:    32,
		R2: R2Config{
			Bucket:          os.Getenv("R2_BUCKET"),
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			PublicURL:       os.Getenv("R2_PUBLIC_URL"),
		},
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = os.Getenv("MONGO_URL")
	}
	if cfg.DBType == "" {
		cfg.DBType = "mongo"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "aerozone"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "*"
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "development"
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadMB = n
		}
	}
	return cfg
}

// Validate checks that the selected store has a connection string.
func (c *Config) Validate() error {
	switch c.DBType {
	case "mongo":
		if c.MongoURL == "" {
			return fmt.Errorf("missing MONGODB_URI env variable")
		}
	case "postgres":
		if c.PostgresURL == "" {
			return fmt.Errorf("missing POSTGRES_URL env variable")
		}
	case "memory":
	default:
		return fmt.Errorf("DB_TYPE %q not supported", c.DBType)
	}
	return nil
}
