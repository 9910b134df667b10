package config

// Default database paths per environment
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./musica.db"

	// DefaultTestDatabasePath is used when ENVIRONMENT=testing
	DefaultTestDatabasePath = "./test_musica.db"
)
