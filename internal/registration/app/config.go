package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultScopes is the scope policy used when OIDC_SCOPES is unset.
var DefaultScopes = []string{"openid", "profile", "email", "address", "phone", "offline_access"}

type Config struct {
	Issuer          string              // Public base URL of the provider (default: http://localhost:8080)
	BasePath        string              // Path prefix of the OIDC endpoints (default: oidc)
	Scopes          []string            // Ordered scopes that may be granted dynamically (default: DefaultScopes)
	ScopeClaims     map[string][]string // Optional: claims released by custom scopes
	ClientIDBytes   int                 // Entropy of generated client ids (default: 16)
	SecretBytes     int                 // Entropy of generated client secrets (default: 32)
	CORSOrigins     []string            // Origins allowed to call the OIDC endpoints (default: *)
	DatabaseFile    string              // Path to SQLite database file (default: ./oidcreg.db)
	PepperFile      string              // Path to file containing pepper for secret hashing (default: ./pepper)
	Env             string              // Environment (dev, staging, prod) (default: dev)
	LogLevel        string              // Log level (debug, info, warn, error) (default: info)
	LogFormat       string              // Log format (json, text) (default: json)
	Port            int                 // HTTP server port (default: 8080)
	MaxRequestBytes int64               // Registration body limit (default: 64 KiB)

	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first; it never overrides variables that
// are already set.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	scopeClaims, err := parseScopeClaims(os.Getenv("OIDC_SCOPE_CLAIMS"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Issuer:          getEnvOrDefault("OIDC_ISSUER", "http://localhost:8080"),
		BasePath:        getEnvOrDefault("OIDC_BASE_PATH", "oidc"),
		Scopes:          getEnvListOrDefault("OIDC_SCOPES", DefaultScopes),
		ScopeClaims:     scopeClaims,
		ClientIDBytes:   getEnvIntOrDefault("OIDC_CLIENT_ID_BYTES", 16),
		SecretBytes:     getEnvIntOrDefault("OIDC_CLIENT_SECRET_BYTES", 32),
		CORSOrigins:     getEnvListOrDefault("OIDC_CORS_ORIGINS", []string{"*"}),
		DatabaseFile:    getEnvOrDefault("DATABASE_FILE", "oidcreg.db"),
		PepperFile:      getEnvOrDefault("PEPPER_FILE", "pepper"),
		Env:             getEnvOrDefault("ENV", "dev"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "json"),
		Port:            getEnvIntOrDefault("PORT", 8080),
		MaxRequestBytes: int64(getEnvIntOrDefault("MAX_REQUEST_BYTES", 64<<10)),

		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the service cannot run safely with.
func (c Config) Validate() error {
	if c.ClientIDBytes < 16 {
		return fmt.Errorf("OIDC_CLIENT_ID_BYTES must be at least 16, got %d", c.ClientIDBytes)
	}
	if c.SecretBytes < 16 {
		return fmt.Errorf("OIDC_CLIENT_SECRET_BYTES must be at least 16, got %d", c.SecretBytes)
	}
	if !slices.Contains(c.Scopes, "openid") {
		return errors.New("OIDC_SCOPES must include openid")
	}
	if c.MaxRequestBytes <= 0 {
		return fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes)
	}
	return nil
}

// parseScopeClaims parses "scope=claim,claim;scope2=claim" into release rules.
func parseScopeClaims(s string) (map[string][]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	rules := make(map[string][]string)
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		scope, claims, ok := strings.Cut(entry, "=")
		scope = strings.TrimSpace(scope)
		if !ok || scope == "" {
			return nil, fmt.Errorf("OIDC_SCOPE_CLAIMS: invalid entry %q", entry)
		}
		rules[scope] = splitList(claims)
	}
	return rules, nil
}

// splitList splits on commas and whitespace, dropping blanks.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	if list := splitList(os.Getenv(key)); len(list) > 0 {
		return list
	}
	return slices.Clone(defaultValue)
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
