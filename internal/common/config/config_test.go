// internal/common/config/config_test.go
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "onboarding-engine", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
	assert.Equal(t, int64(100*1024), cfg.Limits.MaxDocumentBytes)
	assert.Equal(t, int64(1024*1024), cfg.Limits.MaxPayloadBytes)
	assert.Equal(t, 24*60*60, cfg.Sessions.TTL)
	assert.Equal(t, "919091156095", cfg.Contact.WhatsApp)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.Gemini.Model = "gemini-1.5-pro"

	applyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.Model)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Gemini.APIKey = "test-key"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validateConfig(valid()))
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.APIKey = ""
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("non-positive limits", func(t *testing.T) {
		cfg := valid()
		cfg.Limits.MaxDocumentBytes = 0
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("document limit above payload limit", func(t *testing.T) {
		cfg := valid()
		cfg.Limits.MaxDocumentBytes = cfg.Limits.MaxPayloadBytes + 1
		assert.Error(t, validateConfig(cfg))
	})
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_CONFIG_VALUE", "secret")

	v := viper.New()
	v.Set("gemini.api_key", "${TEST_CONFIG_VALUE}")
	v.Set("redis.address", "localhost:6379")
	v.Set("redis.password", "${TEST_CONFIG_MISSING}")

	expandEnvVars(v)

	assert.Equal(t, "secret", v.GetString("gemini.api_key"))
	assert.Equal(t, "localhost:6379", v.GetString("redis.address"))
	// Unset variables leave the placeholder untouched rather than
	// injecting an empty value.
	assert.Equal(t, "${TEST_CONFIG_MISSING}", v.GetString("redis.password"))
}
