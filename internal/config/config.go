package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Known environments. The environment only influences the resolved
// database path and the debug flag; nothing else in the application
// branches on it.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

type (
	Config struct {
		HTTP
		Database
		Global
		UI
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path  string
		Debug bool // log SQL queries
	}
	Global struct {
		Environment              string
		ShutdownTimeoutInSeconds int
	}
	UI struct {
		StaticPath string
	}
	CORS struct {
		Origins []string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("port", 8000)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("static_path", "./static")
	v.SetDefault("debug", true)
	v.SetDefault("cors_origins", "*")

	env := strings.ToLower(v.GetString("ENVIRONMENT"))
	v.SetDefault("database_path", defaultDatabasePath(env))

	debug := v.GetBool("DEBUG")
	if env == EnvProduction {
		debug = false
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path:  v.GetString("DATABASE_PATH"),
			Debug: debug,
		},
		Global: Global{
			Environment:              env,
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		UI: UI{
			StaticPath: v.GetString("STATIC_PATH"),
		},
		CORS: CORS{
			Origins: strings.Split(v.GetString("CORS_ORIGINS"), ","),
		},
	}
}

func defaultDatabasePath(env string) string {
	if env == EnvTesting {
		return DefaultTestDatabasePath
	}
	return DefaultDatabasePath
}
