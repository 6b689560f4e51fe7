package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthController_Status(t *testing.T) {
	t.Run("returns healthy when database is connected", func(t *testing.T) {
		store, _ := setupTestStore(t)
		router := NewRouter(RouterConfig{Store: store, Health: store, Version: "1.0.0"})

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "ok", response.Checks["books"])
		require.NotNil(t, response.Books)
		assert.Equal(t, int64(0), *response.Books)
		assert.NotEmpty(t, response.Time)
	})

	t.Run("reports the number of stored books", func(t *testing.T) {
		store, _ := setupTestStore(t)
		_, err := store.Create("Saman", "Ayu Utami", "1998")
		require.NoError(t, err)
		_, err = store.Create("Pulang", "Leila S. Chudori", "2012")
		require.NoError(t, err)
		router := NewRouter(RouterConfig{Store: store, Health: store})

		w := doRequest(router, "GET", "/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		response := decode[HealthResponse](t, w)
		require.NotNil(t, response.Books)
		assert.Equal(t, int64(2), *response.Books)
	})

	t.Run("count failure marks the service unhealthy", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/health", NewHealthController(uncountable{}, "1.0.0").Status)

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "error: no such table: books", response.Checks["books"])
		assert.Nil(t, response.Books)
	})

	t.Run("reports not configured without a database", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/health", NewHealthController(nil, "1.0.0").Status)

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", decode[HealthResponse](t, w).Checks["database"])
	})

	t.Run("returns unhealthy when database connection is closed", func(t *testing.T) {
		store, db := setupTestStore(t)
		db.Close()
		router := NewRouter(RouterConfig{Store: store, Health: store})

		w := doRequest(router, "GET", "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		response := decode[HealthResponse](t, w)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error:")
		assert.Nil(t, response.Books)
	})
}

// uncountable answers pings but cannot read the books table.
type uncountable struct{}

func (uncountable) Ping() error { return nil }

func (uncountable) Count() (int64, error) { return 0, errors.New("no such table: books") }

func TestSecurityHeadersMiddleware(t *testing.T) {
	store, _ := setupTestStore(t)
	router := NewRouter(RouterConfig{Store: store})

	w := doRequest(router, "GET", "/api/books", "")

	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get(CSRFTokenHeader))
}
