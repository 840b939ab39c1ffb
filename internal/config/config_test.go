package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != "5001" {
		t.Errorf("Expected default port 5001, got %s", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("Expected default Mongo URI, got %s", cfg.Database.URI)
	}
	if cfg.Database.Name != "careerdesk" {
		t.Errorf("Expected default database name careerdesk, got %s", cfg.Database.Name)
	}
	if cfg.Database.ConnectTimeout != 10 {
		t.Errorf("Expected default connect timeout 10, got %d", cfg.Database.ConnectTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "careerdesk_test")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "30")

	cfg := Load()

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.URI != "mongodb://db.internal:27017" {
		t.Errorf("Expected overridden Mongo URI, got %s", cfg.Database.URI)
	}
	if cfg.Database.Name != "careerdesk_test" {
		t.Errorf("Expected database name careerdesk_test, got %s", cfg.Database.Name)
	}
	if cfg.Database.ConnectTimeout != 30 {
		t.Errorf("Expected connect timeout 30, got %d", cfg.Database.ConnectTimeout)
	}
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("MONGO_CONNECT_TIMEOUT", "not-a-number")

	cfg := Load()

	if cfg.Database.ConnectTimeout != 10 {
		t.Errorf("Expected fallback to default 10, got %d", cfg.Database.ConnectTimeout)
	}
}
