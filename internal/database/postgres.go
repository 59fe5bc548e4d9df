// Package database owns the Postgres connection and schema migrations.
package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"funnel-analytics-service/internal/config"
)

// Open connects to Postgres and applies the configured pool limits.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
