package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pageza/mealcraft/backend/internal/health"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks every field and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.SpoonacularAPIKey == "" {
		msg := "is required (set SPOONACULAR_API_KEY or SPOONACULAR_API_KEY_FILE)"
		if GetEnvironment() == Production {
			msg = "secret " + apiKeySecret + " is required"
		}
		errs = append(errs, ValidationError{Field: "SpoonacularAPIKey", Message: msg})
	}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, ValidationError{Field: "ServerPort", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}

	if u, err := url.Parse(cfg.SpoonacularBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, ValidationError{Field: "SpoonacularBaseURL", Message: fmt.Sprintf("invalid URL %q", cfg.SpoonacularBaseURL)})
	}

	for _, origin := range cfg.AllowedOrigins {
		if !validOrigin(origin) {
			errs = append(errs, ValidationError{Field: "AllowedOrigins", Message: fmt.Sprintf("invalid origin %q (want \"*\" or http(s)://host[:port])", origin)})
		}
	}

	if _, err := health.ParseBands(string(cfg.BMIBands)); err != nil {
		errs = append(errs, ValidationError{Field: "BMIBands", Message: err.Error()})
	}

	if _, err := health.ParseCalorieMode(string(cfg.CalorieMode)); err != nil {
		errs = append(errs, ValidationError{Field: "CalorieMode", Message: err.Error()})
	}

	return errors.Join(errs...)
}

// validOrigin accepts "*" or a bare http(s) origin, the only forms the CORS
// middleware takes without panicking.
func validOrigin(origin string) bool {
	if origin == "*" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" || strings.Contains(u.Host, "*") {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == "" && u.User == nil
}
