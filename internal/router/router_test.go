// internal/router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ateliernord/gallery/internal/config"
	"github.com/ateliernord/gallery/internal/models"
	"github.com/ateliernord/gallery/internal/services"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	webDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html>spa</html>"), 0o600))

	return &config.Config{
		Environment: "development",
		Static: config.StaticConfig{
			ImagesDir:    t.TempDir(),
			ImagesMaxAge: 3600,
			WebDir:       webDir,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:4200"}},
		RateLimit: config.RateLimitConfig{
			RequestsPerMinute: 600,
			Burst:             100,
			EmailPerMinute:    600,
			EmailBurst:        100,
		},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := services.NewCatalogService([]models.Artwork{
		{ID: "aw-001", Slug: "red-river", Title: "Red River", Price: 400, Currency: "USD", Style: []string{"oil"}},
	})
	require.NoError(t, err)

	return Initialize(catalog, testConfig(t))
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, "GET", "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestArtworksRouteWired(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, "GET", "/api/artworks?style=oil")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "red-river")
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, "GET", "/api/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestSPAFallback(t *testing.T) {
	r := newTestRouter(t)

	w := serve(r, "GET", "/gallery/some/client/route")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "spa")
}
