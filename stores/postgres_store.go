package stores

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresTraceStore creates a trace store backed by a PostgreSQL database
func NewPostgresTraceStore(dsn string) (*GORMTraceStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}
	return NewGORMTraceStore(db)
}

// NewPostgresTraceStoreDefault creates a PostgreSQL trace store from connection parameters
func NewPostgresTraceStoreDefault(host, user, password, dbname string, port int) (*GORMTraceStore, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)
	return NewPostgresTraceStore(dsn)
}
