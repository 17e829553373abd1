package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreBadger   = "badger"

	BlobDisk = "disk"
	BlobS3   = "s3"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	StoreDriver string
	// BadgerDir empty means an in-memory store.
	BadgerDir string

	BlobDriver  string
	UploadDir   string
	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// JWTSecret empty disables bearer auth.
	JWTSecret string
	JWTIssuer string

	SkillPresetsFile  string
	ResumeSkillPreset string
	QuerySkillPreset  string
	SkillStrategy     string

	// RankDefaultThreshold applies when a rank request carries no threshold.
	RankDefaultThreshold float64
	RankMaxCorpus        int
	MaxDocumentChars     int
	RankWorkers          int
	MaxUploadBytes       int

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 0),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StorePostgres)),
		BadgerDir:   os.Getenv("BADGER_DIR"),

		BlobDriver:  strings.ToLower(getEnv("BLOB_DRIVER", BlobDisk)),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Prefix:    os.Getenv("S3_PREFIX"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTIssuer: getEnv("JWT_ISSUER", "hr-service"),

		SkillPresetsFile:  os.Getenv("SKILL_PRESETS_FILE"),
		ResumeSkillPreset: getEnv("RESUME_SKILL_PRESET", "technology"),
		QuerySkillPreset:  getEnv("QUERY_SKILL_PRESET", "known"),
		SkillStrategy:     getEnv("SKILL_STRATEGY", "keyword"),

		RankDefaultThreshold: getEnvFloat("RANK_DEFAULT_THRESHOLD", 0),
		RankMaxCorpus:        getEnvInt("RANK_MAX_CORPUS", 0),
		MaxDocumentChars:     getEnvInt("MAX_DOCUMENT_CHARS", 0),
		RankWorkers:          getEnvInt("RANK_WORKERS", 0),
		MaxUploadBytes:       getEnvInt("MAX_UPLOAD_BYTES", 10<<20),

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", StorePostgres)
		}
	case StoreBadger:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.BlobDriver {
	case BlobDisk:
	case BlobS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required for blob driver %q", BlobS3)
		}
	default:
		return fmt.Errorf("unknown BLOB_DRIVER %q", c.BlobDriver)
	}
	if math.IsNaN(c.RankDefaultThreshold) || c.RankDefaultThreshold < 0 || c.RankDefaultThreshold > 1 {
		return fmt.Errorf("RANK_DEFAULT_THRESHOLD must be within [0,1], got %v", c.RankDefaultThreshold)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
