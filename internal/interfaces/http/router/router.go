package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by each handler package; the router
// mounts them all under one versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts the registered handlers under /api/<version>
type Router struct {
	engine     *gin.Engine
	version    string
	registrars []RouteRegistrar
}

// New creates a router for the given engine. An empty version
// defaults to v1.
func New(engine *gin.Engine, version string) *Router {
	if version == "" {
		version = "v1"
	}
	return &Router{engine: engine, version: version}
}

// Register queues handlers to be mounted by Setup
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup mounts every registered handler and returns the API group
func (r *Router) Setup() *gin.RouterGroup {
	api := r.engine.Group("/api/" + r.version)
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	return api
}
