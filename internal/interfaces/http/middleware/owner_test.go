package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOwnerRouter(cfg OwnerMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OwnerMiddlewareWithConfig(cfg))
	router.GET("/orders", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestOwnerMiddleware_HeaderExtraction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OwnerMiddleware())

	var gotOwner uuid.UUID
	var gotUser *uuid.UUID
	router.GET("/orders", func(c *gin.Context) {
		gotOwner = MustGetOwnerUUID(c)
		gotUser = GetUserUUID(c)
		c.Status(http.StatusOK)
	})

	ownerID := uuid.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(OwnerHeaderKey, ownerID.String())
	req.Header.Set(UserHeaderKey, userID.String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ownerID, gotOwner)
	require.NotNil(t, gotUser)
	assert.Equal(t, userID, *gotUser)
}

func TestOwnerMiddleware_MissingOwnerRejected(t *testing.T) {
	router := setupOwnerRouter(DefaultOwnerConfig())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Owner identification required")
}

func TestOwnerMiddleware_InvalidOwnerFormat(t *testing.T) {
	router := setupOwnerRouter(DefaultOwnerConfig())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(OwnerHeaderKey, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid owner ID format")
}

func TestOwnerMiddleware_SkipPaths(t *testing.T) {
	router := setupOwnerRouter(DefaultOwnerConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerMiddleware_OptionalAllowsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalOwnerMiddleware())
	router.GET("/orders", func(c *gin.Context) {
		assert.Empty(t, GetOwnerID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnerMiddleware_InvalidUserIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OwnerMiddleware())
	router.GET("/orders", func(c *gin.Context) {
		assert.Nil(t, GetUserUUID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(OwnerHeaderKey, uuid.New().String())
	req.Header.Set(UserHeaderKey, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOwnerUUID_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	id, err := GetOwnerUUID(c)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestMustGetOwnerUUID_PanicsWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Panics(t, func() {
		MustGetOwnerUUID(c)
	})
}
