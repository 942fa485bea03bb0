package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pageza/mealcraft/backend/internal/health"
	"github.com/pageza/mealcraft/backend/internal/spoonacular"
)

const (
	defaultServerHost = "0.0.0.0"
	defaultServerPort = "8080"
	defaultSecretsDir = "/run/secrets"

	apiKeySecret = "spoonacular_api_key"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost     string
	ServerPort     string
	AllowedOrigins []string

	// Recipe search. The key is never logged.
	SpoonacularAPIKey  string
	SpoonacularBaseURL string

	// Health evaluation
	BMIBands    health.Bands
	CalorieMode health.CalorieMode

	LogLevel string
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	var err error
	switch env {
	case CI:
		err = loadCIConfig(cfg)
	case Development, Test:
		err = loadDevConfig(cfg)
	case Production:
		err = loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig reads environment variables only.
func loadCIConfig(cfg *Config) error {
	loadFromEnv(cfg)
	cfg.SpoonacularAPIKey = strings.TrimSpace(os.Getenv("SPOONACULAR_API_KEY"))
	return nil
}

// loadDevConfig reads a .env file when present, then environment variables.
// The API key may also come from a file or a local secrets directory.
func loadDevConfig(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .env: %w", err)
	}

	loadFromEnv(cfg)

	key, err := apiKeyFromEnv()
	if err != nil {
		return err
	}
	if key == "" {
		key = readSecret(apiKeySecret)
	}
	cfg.SpoonacularAPIKey = key
	return nil
}

// loadProdConfig takes the API key from Docker secrets only. Non-secret
// settings come from secrets when present, otherwise from the environment.
func loadProdConfig(cfg *Config) error {
	loadFromEnv(cfg)

	if v := readSecret("server_host"); v != "" {
		cfg.ServerHost = v
	}
	if v := readSecret("server_port"); v != "" {
		cfg.ServerPort = v
	}
	cfg.SpoonacularAPIKey = readSecret(apiKeySecret)
	return nil
}

func loadFromEnv(cfg *Config) {
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))
	cfg.SpoonacularBaseURL = os.Getenv("SPOONACULAR_BASE_URL")
	cfg.BMIBands = health.Bands(strings.ToLower(os.Getenv("BMI_BANDS")))
	cfg.CalorieMode = health.CalorieMode(strings.ToLower(os.Getenv("CALORIE_MODE")))
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
}

// apiKeyFromEnv reads SPOONACULAR_API_KEY, falling back to the file named by
// SPOONACULAR_API_KEY_FILE.
func apiKeyFromEnv() (string, error) {
	if key := strings.TrimSpace(os.Getenv("SPOONACULAR_API_KEY")); key != "" {
		return key, nil
	}
	path := os.Getenv("SPOONACULAR_API_KEY_FILE")
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("API key file is empty")
	}
	return key, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerHost == "" {
		cfg.ServerHost = defaultServerHost
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}
	if cfg.SpoonacularBaseURL == "" {
		cfg.SpoonacularBaseURL = spoonacular.DefaultBaseURL
	}
	if cfg.BMIBands == "" {
		cfg.BMIBands = health.BandsLegacy
	}
	if cfg.CalorieMode == "" {
		cfg.CalorieMode = health.CalorieModeFixed
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
