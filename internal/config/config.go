package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// StoreConfig holds the record-store settings. Commands that only talk
// to MongoDB load this instead of the full Config, so they run without
// the API secrets.
type StoreConfig struct {
	MongoURI           string
	MongoDatabase      string
	BusinessCollection string
	Timeout            time.Duration
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr string
	StoreConfig
	ServerLog        *log.Logger
	JWTConfigs       []JWTConfig
	JWTAudience      string
	AllowedOrigins   []string
	OpenCageEndpoint string
	OpenCageAPIKey   string
	GeocodeTimeout   time.Duration
	S3Bucket         string
	AWSRegion        string
}

// LoadStore reads the record-store environment variables. A local .env
// file is applied first when present.
func LoadStore() StoreConfig {
	_ = godotenv.Load()

	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	return StoreConfig{
		MongoURI:           envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:      envOrDefault("MONGO_DB", "mzansibiz"),
		BusinessCollection: envOrDefault("BUSINESS_COLLECTION", "businesses"),
		Timeout:            timeout,
	}
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	store := LoadStore()

	geocodeTimeout := 10 * time.Second
	if raw := strings.TrimSpace(os.Getenv("GEOCODE_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			geocodeTimeout = parsed
		}
	}

	openCageKey := strings.TrimSpace(os.Getenv("OPENCAGE_API_KEY"))
	if openCageKey == "" {
		log.Fatal("OPENCAGE_API_KEY must be configured")
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "mzansibiz-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_LEGACY_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_LEGACY_JWT_ISSUER", "mzansibiz-legacy-auth"),
			Secret: []byte(secret),
		})
	}

	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_JWT_SECRET or AUTH_LEGACY_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	bucket := envOrDefault("S3_LOGO_BUCKET", "mzansibiz-logos")
	region := envOrDefault("AWS_REGION", "af-south-1")

	cfg := Config{
		Addr:             envOrDefault("HTTP_ADDR", ":8080"),
		StoreConfig:      store,
		ServerLog:        log.New(os.Stdout, "[mzansibiz-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:       jwtConfigs,
		JWTAudience:      jwtAudience,
		AllowedOrigins:   parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		OpenCageEndpoint: strings.TrimSpace(os.Getenv("OPENCAGE_ENDPOINT")),
		OpenCageAPIKey:   openCageKey,
		GeocodeTimeout:   geocodeTimeout,
		S3Bucket:         bucket,
		AWSRegion:        region,
	}

	cfg.ServerLog.Printf("loaded config: addr=%q db=%q collection=%q bucket=%q region=%q", cfg.Addr, cfg.MongoDatabase, cfg.BusinessCollection, bucket, region)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
