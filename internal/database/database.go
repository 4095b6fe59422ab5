package database

import (
	"fmt"
	"os"
	"path/filepath"

	"interview-prep/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver (registers "sqlite")
)

// DSN builds the modernc sqlite connection string for a database file.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
}

// NewSQLiteDB opens (and creates if needed) the SQLite database at path.
func NewSQLiteDB(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sqlx.Connect("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	// SQLite 는 writer 가 하나뿐이라 커넥션을 하나로 제한한다
	db.SetMaxOpenConns(1)

	logger.Get().Info("Successfully connected to SQLite database", zap.String("path", path))
	return db, nil
}
