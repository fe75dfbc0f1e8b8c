// Package app wires the router, the HTTP server and the startup QR job together.
package app

import (
	"appredirect/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InitMiddleware - initializes middleware handlers for the router.
func InitMiddleware(r *chi.Mux, ctrl *handlers.Controller) {
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(ctrl.LoggingMiddleware)
}

// Routing - registers routes of the redirect controller.
// Registered routes:
//   - GET "/app-store-redirect": redirects to the store for the client's platform using ctrl.AppStoreRedirect().
//   - GET "/ping": service availability check through ctrl.PingHandler().
//
// HEAD requests are answered by the GET handlers.
func Routing(r *chi.Mux, ctrl *handlers.Controller) {
	r.Get("/app-store-redirect", ctrl.AppStoreRedirect())
	r.Get("/ping", ctrl.PingHandler())
}

// NewRouter returns a chi router with the middleware and routes of ctrl installed.
func NewRouter(ctrl *handlers.Controller) *chi.Mux {
	r := chi.NewRouter()
	InitMiddleware(r, ctrl)
	Routing(r, ctrl)
	return r
}
