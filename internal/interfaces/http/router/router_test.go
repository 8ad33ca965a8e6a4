package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRegistrar struct {
	prefix string
}

func (s *stubRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(s.prefix, func(c *gin.Context) {
		c.String(http.StatusOK, s.prefix)
	})
}

func TestRouter_Setup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mounts every registrar under the version prefix", func(t *testing.T) {
		engine := gin.New()
		New(engine, "v1").
			Register(&stubRegistrar{prefix: "/products"}).
			Register(&stubRegistrar{prefix: "/orders"}, &stubRegistrar{prefix: "/debts"}).
			Setup()

		for _, path := range []string{"/api/v1/products", "/api/v1/orders", "/api/v1/debts"} {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("empty version defaults to v1", func(t *testing.T) {
		engine := gin.New()
		New(engine, "").Register(&stubRegistrar{prefix: "/customers"}).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unmounted paths stay 404", func(t *testing.T) {
		engine := gin.New()
		New(engine, "v2").Register(&stubRegistrar{prefix: "/products"}).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
