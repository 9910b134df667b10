package http

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jrsanchez/musica/internal/database"
)

// RouterConfig carries all dependencies for the HTTP router.
type RouterConfig struct {
	Database      *database.Database
	UserStore     UserStore
	SongStore     SongStore
	FavoriteStore FavoriteStore
	StaticPath    string
	CORSOrigins   []string
	Environment   string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(corsMiddleware(cfg.CORSOrigins))

	health := NewHealthController(cfg.Database, cfg.Environment, cfg.Version)
	usersController := NewUsersController(cfg.UserStore)
	songsController := NewSongsController(cfg.SongStore)
	favoritesController := NewFavoritesController(cfg.FavoriteStore, cfg.UserStore, cfg.SongStore)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API info endpoint
	router.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Musica API",
			"version":     cfg.Version,
			"environment": cfg.Environment,
			"endpoints": gin.H{
				"usuarios":  "/api/usuarios",
				"canciones": "/api/canciones",
				"favoritos": "/api/favoritos",
			},
		})
	})

	// Usuario endpoints
	usuarios := router.Group("/api/usuarios")
	{
		usuarios.GET("", usersController.ListUsers)
		usuarios.POST("", usersController.CreateUser)
		usuarios.GET("/:id", usersController.GetUser)
		usuarios.PUT("/:id", usersController.UpdateUser)
		usuarios.DELETE("/:id", usersController.DeleteUser)
		usuarios.GET("/:id/favoritos", usersController.ListUserFavorites)
	}

	// Cancion endpoints. /buscar must coexist with /:id; gin resolves
	// static segments before the parameter.
	canciones := router.Group("/api/canciones")
	{
		canciones.GET("", songsController.ListSongs)
		canciones.POST("", songsController.CreateSong)
		canciones.GET("/buscar", songsController.SearchSongs)
		canciones.GET("/:id", songsController.GetSong)
		canciones.PUT("/:id", songsController.UpdateSong)
		canciones.DELETE("/:id", songsController.DeleteSong)
	}

	// Favorito endpoints. The pair routes reuse the :id parameter name
	// (the user ID there) because gin requires a single wildcard name
	// per path segment.
	favoritos := router.Group("/api/favoritos")
	{
		favoritos.GET("", favoritesController.ListFavorites)
		favoritos.POST("", favoritesController.CreateFavorite)
		favoritos.GET("/:id", favoritesController.GetFavorite)
		favoritos.DELETE("/:id", favoritesController.DeleteFavorite)
		favoritos.POST("/:id/canciones/:id_cancion", favoritesController.CreateFavoriteSpecific)
		favoritos.DELETE("/:id/canciones/:id_cancion", favoritesController.DeleteFavoriteSpecific)
	}

	// Static frontend bundle
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
		router.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(cfg.StaticPath, "index.html"))
		})
	}

	return router
}

// corsMiddleware defaults to allowing all origins for development and
// switches to an explicit origin list with credentials when configured.
func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", RequestIDHeader)

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}

	return cors.New(corsCfg)
}
