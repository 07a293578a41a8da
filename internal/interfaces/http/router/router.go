package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar registers a set of routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration under a versioned API prefix
type Router struct {
	engine     *gin.Engine
	apiVersion string
	middleware []gin.HandlerFunc
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use adds middleware applying to every versioned API route
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Register adds a RouteRegistrar to be registered on Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	if len(r.middleware) > 0 {
		api.Use(r.middleware...)
	}
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Group is a declarative route group with its own prefix and middleware
type Group struct {
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
	subgroups  []*Group
}

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewGroup creates a route group under the given prefix
func NewGroup(prefix string) *Group {
	return &Group{prefix: prefix}
}

// Use adds middleware applying to every route in this group
func (g *Group) Use(middleware ...gin.HandlerFunc) *Group {
	g.middleware = append(g.middleware, middleware...)
	return g
}

// GET registers a GET route
func (g *Group) GET(path string, handlers ...gin.HandlerFunc) *Group {
	return g.handle(http.MethodGet, path, handlers)
}

// POST registers a POST route
func (g *Group) POST(path string, handlers ...gin.HandlerFunc) *Group {
	return g.handle(http.MethodPost, path, handlers)
}

// PUT registers a PUT route
func (g *Group) PUT(path string, handlers ...gin.HandlerFunc) *Group {
	return g.handle(http.MethodPut, path, handlers)
}

// PATCH registers a PATCH route
func (g *Group) PATCH(path string, handlers ...gin.HandlerFunc) *Group {
	return g.handle(http.MethodPatch, path, handlers)
}

// DELETE registers a DELETE route
func (g *Group) DELETE(path string, handlers ...gin.HandlerFunc) *Group {
	return g.handle(http.MethodDelete, path, handlers)
}

func (g *Group) handle(method, path string, handlers []gin.HandlerFunc) *Group {
	g.routes = append(g.routes, route{method: method, path: path, handlers: handlers})
	return g
}

// Group creates a nested sub-group
func (g *Group) Group(prefix string) *Group {
	subgroup := NewGroup(prefix)
	g.subgroups = append(g.subgroups, subgroup)
	return subgroup
}

// RegisterRoutes implements RouteRegistrar
func (g *Group) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(g.prefix)
	if len(g.middleware) > 0 {
		group.Use(g.middleware...)
	}

	for _, r := range g.routes {
		group.Handle(r.method, r.path, r.handlers...)
	}

	for _, subgroup := range g.subgroups {
		subgroup.RegisterRoutes(group)
	}
}
