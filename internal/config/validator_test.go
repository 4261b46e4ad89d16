package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_BackendRequirements(t *testing.T) {
	t.Run("postgres needs db settings", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_USER")
	})

	t.Run("redis needs an address", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORE_BACKEND", "redis")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "REDIS_ADDR")
		assert.NotContains(t, err.Error(), "DB_USER")
	})

	t.Run("memory needs nothing extra", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
		t.Setenv("API_KEY", "k")
		t.Setenv("STORE_BACKEND", "memory")

		require.NoError(t, ValidateEnv())
	})
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "SESSION_IDLE_TIMEOUT")
}
