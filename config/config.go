package config

import (
	"fmt"
	"os"
	"time"
)

const (
	SourceMongo    = "mongo"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr string

	Source          string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	PostgresDSN     string
	SQLitePath      string

	// SourceZone is the fixed offset the stored date_time values carry.
	SourceZone   *time.Location
	QueryTimeout time.Duration
}

func Load() (*Config, error) {
	source := getenv("REMINDERS_SOURCE", SourceMongo)

	cfg := &Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		Source:          source,
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   getenv("MONGO_DATABASE", "RemindMe-test"),
		MongoCollection: getenv("MONGO_COLLECTION", "reminders"),
		PostgresDSN:     os.Getenv("POSTGRES_DSN"),
		SQLitePath:      getenv("SQLITE_PATH", "./data/reminders.db"),
	}

	switch source {
	case SourceMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("MONGO_URI is required when REMINDERS_SOURCE=mongo")
		}
	case SourcePostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required when REMINDERS_SOURCE=postgres")
		}
	case SourceSQLite:
	default:
		return nil, fmt.Errorf("invalid REMINDERS_SOURCE %q (mongo, postgres, sqlite)", source)
	}

	offset := getenv("SOURCE_UTC_OFFSET", "-04:00")
	zone, err := parseOffset(offset)
	if err != nil {
		return nil, fmt.Errorf("invalid SOURCE_UTC_OFFSET: %w", err)
	}
	cfg.SourceZone = zone

	timeout, err := time.ParseDuration(getenv("QUERY_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUERY_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	cfg.QueryTimeout = timeout

	return cfg, nil
}

// parseOffset turns "-04:00" into a fixed zone named "UTC-04:00".
func parseOffset(s string) (*time.Location, error) {
	t, err := time.Parse("-07:00", s)
	if err != nil {
		return nil, err
	}
	_, secs := t.Zone()
	return time.FixedZone("UTC"+s, secs), nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
