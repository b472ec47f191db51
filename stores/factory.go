package stores

import (
	"fmt"
)

// NewStore creates a new trace store based on the configuration
func NewStore(config *StoreConfig) (TraceStore, error) {
	switch config.Type {
	case "sqlite":
		return NewSQLiteTraceStore(config.Connection)
	case "postgres":
		return NewPostgresTraceStore(config.Connection)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
