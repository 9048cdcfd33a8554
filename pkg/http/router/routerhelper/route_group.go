package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers httprouter handles under a common path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return NewRouteGroup(g.router, g.path(prefix))
}

func (g *RouteGroup) GET(p string, h httprouter.Handle) {
	g.router.GET(g.path(p), h)
}

func (g *RouteGroup) POST(p string, h httprouter.Handle) {
	g.router.POST(g.path(p), h)
}

func (g *RouteGroup) Handler(method, p string, h http.Handler) {
	g.router.Handler(method, g.path(p), h)
}

func (g *RouteGroup) path(p string) string {
	return path.Join(g.prefix, p)
}
