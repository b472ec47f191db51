package stores

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteTraceStore creates a trace store backed by a SQLite database file
func NewSQLiteTraceStore(dbPath string) (*GORMTraceStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	return NewGORMTraceStore(db)
}

// NewSQLiteTraceStoreDefault creates a SQLite trace store with default settings
func NewSQLiteTraceStoreDefault() (*GORMTraceStore, error) {
	return NewSQLiteTraceStore("attempt_traces.sqlite")
}
