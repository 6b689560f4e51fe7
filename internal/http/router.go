package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	if len(cfg.CSRFSecret) > 0 {
		router.Use(CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	health := NewHealthController(cfg.Health, cfg.Version)
	books := NewBooksController(cfg.Store)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/books", books.List)
		api.GET("/books/:id", books.Get)
		api.POST("/books", books.Create)
		api.PATCH("/books/:id", books.Update)
		api.DELETE("/books/:id", books.Delete)
		api.GET("/export", books.Export)
	}

	return router
}
