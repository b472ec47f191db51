package stores

import (
	"testing"
)

func TestNewStoreUnsupportedType(t *testing.T) {
	_, err := NewStore(NewStoreConfig("mysql", "dsn"))
	if err == nil {
		t.Fatal("expected an error for an unsupported store type")
	}
}

func TestStoreConfigOptions(t *testing.T) {
	cfg := NewStoreConfig("sqlite", "traces.sqlite").WithOption("busy_timeout", "5000")
	if cfg.Type != "sqlite" {
		t.Errorf("expected type sqlite, got %s", cfg.Type)
	}
	if cfg.Connection != "traces.sqlite" {
		t.Errorf("expected connection path, got %s", cfg.Connection)
	}
	if cfg.Options["busy_timeout"] != "5000" {
		t.Errorf("expected option to be set, got %v", cfg.Options)
	}
}
