package stores

import (
	"time"
)

// AttemptTrace records the outcome of a single completion attempt against one
// endpoint+model pair. Indexed by request_id so every attempt of one Generate
// call can be retrieved together.
type AttemptTrace struct {
	ID         uint      `gorm:"primarykey" json:"-"`
	CreatedAt  time.Time `json:"-"`
	RequestID  string    `gorm:"index:idx_trace_request;not null" json:"request_id"`
	Endpoint   string    `gorm:"not null" json:"endpoint"`
	Model      string    `gorm:"not null" json:"model"`
	Status     string    `gorm:"not null" json:"status"`         // "success", "failure"
	Kind       string    `json:"kind,omitempty"`                 // failure kind: transport, http_error, empty_body, empty_content, model_missing
	Label      string    `gorm:"type:text" json:"label,omitempty"` // human-readable error text
	Timestamp  int64     `gorm:"not null" json:"timestamp"`      // attempt start, unix millis
	DurationMS int64     `json:"duration_ms,omitempty"`
}

// TraceStore interface for attempt-trace persistence operations
type TraceStore interface {
	// SaveTrace saves a single attempt trace
	SaveTrace(trace *AttemptTrace) error

	// SaveTraces saves multiple attempt traces in a batch
	SaveTraces(traces []*AttemptTrace) error

	// GetTracesByRequest retrieves all attempts recorded for one Generate call
	GetTracesByRequest(requestID string) ([]*AttemptTrace, error)

	// RecentTraces retrieves the most recent attempts, newest first
	RecentTraces(limit int) ([]*AttemptTrace, error)

	// DeleteTracesBefore removes traces older than the cutoff
	DeleteTracesBefore(cutoff time.Time) error
}

// StoreConfig holds configuration for database stores
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres"
	Connection string            `json:"connection"` // file path or DSN
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
