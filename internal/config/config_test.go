package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, EnvDevelopment, cfg.Global.Environment)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, int32(8000), cfg.HTTP.Port)
	assert.True(t, cfg.Database.Debug)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
}

func TestNewConfig_TestingEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "testing")

	cfg := NewConfig()

	assert.Equal(t, EnvTesting, cfg.Global.Environment)
	assert.Equal(t, DefaultTestDatabasePath, cfg.Database.Path)
}

func TestNewConfig_ProductionForcesDebugOff(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DEBUG", "true")

	cfg := NewConfig()

	assert.False(t, cfg.Database.Debug)
}

func TestNewConfig_ExplicitOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_PATH", "/tmp/custom.db")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg := NewConfig()

	assert.Equal(t, int32(9001), cfg.HTTP.Port)
	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
}
