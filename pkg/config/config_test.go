package config

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "BLOB_DRIVER", "JWT_SECRET", "RANK_DEFAULT_THRESHOLD", "LOG_JSON", "MAX_UPLOAD_BYTES", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}
	t.Setenv("DATABASE_URL", "postgres://localhost/hr")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, BlobDisk, cfg.BlobDriver)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, "technology", cfg.ResumeSkillPreset)
	assert.Equal(t, "known", cfg.QuerySkillPreset)
	assert.Equal(t, 10<<20, cfg.MaxUploadBytes)
	assert.False(t, cfg.LogJSON)
	assert.Zero(t, cfg.DBMaxConns)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Badger")
	t.Setenv("RANK_DEFAULT_THRESHOLD", "0.25")
	t.Setenv("RANK_WORKERS", "4")
	t.Setenv("DB_MAX_CONNS", "16")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, StoreBadger, cfg.StoreDriver)
	assert.Equal(t, 0.25, cfg.RankDefaultThreshold)
	assert.Equal(t, 4, cfg.RankWorkers)
	assert.Equal(t, 16, cfg.DBMaxConns)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 10<<20, cfg.MaxUploadBytes)
}

func TestLoadNaNThresholdRejected(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreBadger)
	t.Setenv("BLOB_DRIVER", BlobDisk)
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("RANK_DEFAULT_THRESHOLD", "NaN")

	cfg := Load()
	assert.ErrorContains(t, cfg.Validate(), "RANK_DEFAULT_THRESHOLD")
}

func TestValidate(t *testing.T) {
	ok := Config{StoreDriver: StoreBadger, BlobDriver: BlobDisk, MaxUploadBytes: 1}
	require.NoError(t, ok.Validate())

	cases := map[string]func(c *Config){
		"postgres without dsn": func(c *Config) { c.StoreDriver = StorePostgres },
		"unknown store":        func(c *Config) { c.StoreDriver = "sqlite" },
		"s3 without bucket":    func(c *Config) { c.BlobDriver = BlobS3 },
		"unknown blob":         func(c *Config) { c.BlobDriver = "ftp" },
		"threshold above one":  func(c *Config) { c.RankDefaultThreshold = 1.5 },
		"threshold nan":        func(c *Config) { c.RankDefaultThreshold = math.NaN() },
		"zero upload limit":    func(c *Config) { c.MaxUploadBytes = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := ok
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
