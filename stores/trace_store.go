package stores

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GORMTraceStore implements TraceStore for SQLite/PostgreSQL via GORM
type GORMTraceStore struct {
	db *gorm.DB
}

// NewGORMTraceStore creates a trace store from an existing GORM database connection
func NewGORMTraceStore(db *gorm.DB) (*GORMTraceStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	// Auto-migrate the trace table
	if err := db.AutoMigrate(&AttemptTrace{}); err != nil {
		return nil, fmt.Errorf("failed to migrate attempt_traces table: %w", err)
	}

	return &GORMTraceStore{db: db}, nil
}

// SaveTrace saves a single attempt trace
func (s *GORMTraceStore) SaveTrace(trace *AttemptTrace) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.db.Create(trace).Error
}

// SaveTraces saves multiple attempt traces in a batch
func (s *GORMTraceStore) SaveTraces(traces []*AttemptTrace) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	if len(traces) == 0 {
		return nil
	}
	return s.db.CreateInBatches(traces, 100).Error
}

// GetTracesByRequest retrieves all attempts for one Generate call, ordered by timestamp
func (s *GORMTraceStore) GetTracesByRequest(requestID string) ([]*AttemptTrace, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	var traces []*AttemptTrace
	err := s.db.Where("request_id = ?", requestID).
		Order("timestamp ASC").
		Find(&traces).Error

	return traces, err
}

// RecentTraces retrieves the most recent attempts, newest first
func (s *GORMTraceStore) RecentTraces(limit int) ([]*AttemptTrace, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	var traces []*AttemptTrace
	err := s.db.Order("timestamp DESC").Limit(limit).Find(&traces).Error
	return traces, err
}

// DeleteTracesBefore removes traces older than the cutoff
func (s *GORMTraceStore) DeleteTracesBefore(cutoff time.Time) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.db.Where("timestamp < ?", cutoff.UnixMilli()).Delete(&AttemptTrace{}).Error
}
