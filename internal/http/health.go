package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/learning/internal/database"
)

const (
	healthOK          = "ok"
	healthUnavailable = "unhealthy"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController reports whether the catalog store is reachable and still
// carries every table the services read from.
type HealthController struct {
	db      *database.Database
	version string
}

func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:      db,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := h.runChecks()

	status := "healthy"
	statusCode := http.StatusOK
	for _, result := range checks {
		if result != healthOK && result != "not configured" {
			status = healthUnavailable
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.IndentedJSON(statusCode, HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	})
}

func (h *HealthController) runChecks() map[string]string {
	if h.db == nil {
		return map[string]string{"database": "not configured"}
	}

	checks := map[string]string{}
	sqlDB, err := h.db.SQLDB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		checks["database"] = "error: " + err.Error()
		checks["schema"] = "skipped"
		return checks
	}
	checks["database"] = healthOK

	if missing := h.db.MissingTables(); len(missing) > 0 {
		checks["schema"] = "missing tables: " + strings.Join(missing, ", ")
	} else {
		checks["schema"] = healthOK
	}
	return checks
}
