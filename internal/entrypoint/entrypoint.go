package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jrsanchez/musica/internal/config"
	"github.com/jrsanchez/musica/internal/database"
	"github.com/jrsanchez/musica/internal/database/favorites"
	"github.com/jrsanchez/musica/internal/database/songs"
	"github.com/jrsanchez/musica/internal/database/users"
	http_controllers "github.com/jrsanchez/musica/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Musica API v%s (%s)", version, cfg.Global.Environment)

	db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		UserStore:     users.NewRepository(db.DB),
		SongStore:     songs.NewRepository(db.DB),
		FavoriteStore: favorites.NewRepository(db.DB),
		StaticPath:    cfg.UI.StaticPath,
		CORSOrigins:   cfg.CORS.Origins,
		Environment:   cfg.Global.Environment,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
