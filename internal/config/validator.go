package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the environment variables every deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// backendEnvVars lists the additional variables each storage backend needs
var backendEnvVars = map[string][]string{
	BackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	BackendRedis:    {"REDIS_ADDR"},
	BackendMemory:   nil,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(os.Getenv("STORE_BACKEND"))
	if backend == "" {
		backend = BackendPostgres
	}
	required, ok := backendEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range append(append([]string{}, RequiredEnvVars...), required...) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("SESSION_IDLE_TIMEOUT") == "" {
		warnings = append(warnings, "SESSION_IDLE_TIMEOUT is not set - idle players keep their slot until they leave")
	}

	return warnings, nil
}
