// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── users/           # User CRUD and cascade deletion
//	├── songs/           # Song CRUD and dynamic search
//	└── favorites/       # Favorite pair management
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./musica.db", false)
//
//	// Create domain-specific repositories
//	usersRepo := users.NewRepository(db.DB)
//	songsRepo := songs.NewRepository(db.DB)
//	favoritesRepo := favorites.NewRepository(db.DB)
//
// Repositories surface gorm.ErrRecordNotFound and gorm.ErrDuplicatedKey
// unchanged; the HTTP layer translates them to API error responses.
package database
