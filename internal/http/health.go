package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Books   *int64            `json:"books,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthController answers /health with the database state and, when the
// database answers, the size of the catalogue.
type HealthController struct {
	catalog CatalogHealth
	version string
}

func NewHealthController(catalog CatalogHealth, version string) *HealthController {
	return &HealthController{
		catalog: catalog,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"
	var books *int64

	if h.catalog == nil {
		checks["database"] = "not configured"
	} else if err := h.catalog.Ping(); err != nil {
		checks["database"] = "error: " + err.Error()
		status = "unhealthy"
	} else {
		checks["database"] = "ok"
		if total, err := h.catalog.Count(); err != nil {
			checks["books"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["books"] = "ok"
			books = &total
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Books:   books,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
