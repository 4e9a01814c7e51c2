// Package router wraps httprouter with a functional configuration
// style: each handler area contributes an Option that registers its
// routes.
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

type Router struct {
	*httprouter.Router
}

// Option registers a group of routes on the router.
type Option func(*Router)

func New(options ...Option) *Router {
	r := &Router{Router: httprouter.New()}

	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Method not allowed", nil)
	})

	for _, option := range options {
		option(r)
	}

	return r
}
