package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jrsanchez/musica/internal/database"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Environment string `json:"environment,omitempty"`
	Version     string `json:"version,omitempty"`
	Time        string `json:"time"`
}

type HealthController struct {
	db          *database.Database
	environment string
	version     string
}

func NewHealthController(db *database.Database, environment, version string) *HealthController {
	return &HealthController{
		db:          db,
		environment: environment,
		version:     version,
	}
}

// Status reports liveness and store connectivity.
// GET /health
func (h *HealthController) Status(c *gin.Context) {
	dbStatus := "connected"
	status := "healthy"

	if h.db == nil {
		dbStatus = "not configured"
		status = "unhealthy"
	} else if err := h.db.Ping(); err != nil {
		dbStatus = "disconnected"
		status = "unhealthy"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      status,
		Database:    dbStatus,
		Environment: h.environment,
		Version:     h.version,
		Time:        time.Now().Format(time.RFC3339),
	})
}
