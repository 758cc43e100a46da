package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/wordslearning/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a keyed record does not exist
var ErrNotFound = errors.New("not found")

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
)

// Connect opens the database described by cfg and creates missing tables
func Connect(cfg config.DBConfig) (*sqlx.DB, error) {
	if cfg.Type == "postgres" {
		db, err := sqlx.Connect(driverPostgres, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := initializeSchema(db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}

	return ConnectSQLite(cfg.Path)
}

// ConnectSQLite opens (or creates) a sqlite database file
func ConnectSQLite(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(driverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS words (
	foreign_text TEXT PRIMARY KEY,
	native TEXT NOT NULL,
	transcription TEXT NOT NULL DEFAULT '',
	part_of_speech TEXT NOT NULL DEFAULT 'noun',
	f_to_n_remark TEXT NOT NULL DEFAULT '',
	n_to_f_remark TEXT NOT NULL DEFAULT '',
	ftn_mastery_percent REAL NOT NULL DEFAULT 0,
	ftn_correct_count INTEGER NOT NULL DEFAULT 0,
	ftn_incorrect_count INTEGER NOT NULL DEFAULT 0,
	ftn_last_answer_correct BOOLEAN NOT NULL DEFAULT true,
	ftn_last_answer_at TIMESTAMP NOT NULL,
	ntf_mastery_percent REAL NOT NULL DEFAULT 0,
	ntf_correct_count INTEGER NOT NULL DEFAULT 0,
	ntf_incorrect_count INTEGER NOT NULL DEFAULT 0,
	ntf_last_answer_correct BOOLEAN NOT NULL DEFAULT true,
	ntf_last_answer_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS words_lists (
	name TEXT PRIMARY KEY,
	comment TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS words_list_items (
	list_name TEXT NOT NULL,
	foreign_text TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (list_name, foreign_text),
	FOREIGN KEY (list_name) REFERENCES words_lists(name) ON DELETE CASCADE ON UPDATE CASCADE
);

CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS words (
	foreign_text TEXT PRIMARY KEY,
	native TEXT NOT NULL,
	transcription TEXT NOT NULL DEFAULT '',
	part_of_speech TEXT NOT NULL DEFAULT 'noun',
	f_to_n_remark TEXT NOT NULL DEFAULT '',
	n_to_f_remark TEXT NOT NULL DEFAULT '',
	ftn_mastery_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
	ftn_correct_count INTEGER NOT NULL DEFAULT 0,
	ftn_incorrect_count INTEGER NOT NULL DEFAULT 0,
	ftn_last_answer_correct BOOLEAN NOT NULL DEFAULT true,
	ftn_last_answer_at TIMESTAMPTZ NOT NULL,
	ntf_mastery_percent DOUBLE PRECISION NOT NULL DEFAULT 0,
	ntf_correct_count INTEGER NOT NULL DEFAULT 0,
	ntf_incorrect_count INTEGER NOT NULL DEFAULT 0,
	ntf_last_answer_correct BOOLEAN NOT NULL DEFAULT true,
	ntf_last_answer_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS words_lists (
	name TEXT PRIMARY KEY,
	comment TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS words_list_items (
	list_name TEXT NOT NULL REFERENCES words_lists(name) ON DELETE CASCADE ON UPDATE CASCADE,
	foreign_text TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (list_name, foreign_text)
);

CREATE TABLE IF NOT EXISTS kv_store (
	key TEXT PRIMARY KEY,
	value BYTEA NOT NULL
);
`

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == driverPostgres {
		schema = postgresSchema
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
