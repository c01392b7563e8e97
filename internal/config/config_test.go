package config

import (
	"testing"
	"time"
)

func TestLoadStoreRunsWithoutAPISecrets(t *testing.T) {
	// The store settings must load with none of the API secrets set,
	// so commands like the seeder work in a fresh environment.
	for _, key := range []string{
		"OPENCAGE_API_KEY",
		"AUTH_JWT_SECRET",
		"AUTH_LEGACY_JWT_SECRET",
		"MONGO_URI",
		"MONGO_DB",
		"BUSINESS_COLLECTION",
		"MONGO_CONNECT_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadStore()

	if cfg.MongoURI != "mongodb://mongo:27017" {
		t.Errorf("unexpected default URI %q", cfg.MongoURI)
	}
	if cfg.MongoDatabase != "mzansibiz" {
		t.Errorf("unexpected default database %q", cfg.MongoDatabase)
	}
	if cfg.BusinessCollection != "businesses" {
		t.Errorf("unexpected default collection %q", cfg.BusinessCollection)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("unexpected default timeout %s", cfg.Timeout)
	}
}

func TestLoadStoreOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")

	cfg := LoadStore()

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("unexpected URI %q", cfg.MongoURI)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Timeout)
	}
}
